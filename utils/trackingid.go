package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	trackingDateLayout = "20060102"
	trackingAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingRandomLen  = 4
)

var ErrTrackingIDExhausted = fmt.Errorf("no tracking id left for today")

// TrackingIDGenerator issues public tracking ids of the form PREFIX-YYYYMMDD-XXXX
// where XXXX are random base-36 characters. Ids are not cryptographically
// secure. The generator never issues the same id twice within a process.
type TrackingIDGenerator struct {
	prefix string

	mu     sync.Mutex
	rnd    *rand.Rand
	day    string
	issued map[string]struct{}
}

func NewTrackingIDGenerator(prefix string) *TrackingIDGenerator {
	return &TrackingIDGenerator{
		prefix: prefix,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		issued: make(map[string]struct{}),
	}
}

// New returns a tracking id for the date of now
func (g *TrackingIDGenerator) New(now time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := now.Format(trackingDateLayout)
	if day != g.day {
		g.day = day
		g.issued = make(map[string]struct{})
	}

	capacity := 1
	for i := 0; i < trackingRandomLen; i++ {
		capacity *= len(trackingAlphabet)
	}
	if len(g.issued) >= capacity {
		return "", ErrTrackingIDExhausted
	}

	for {
		var b strings.Builder
		for i := 0; i < trackingRandomLen; i++ {
			b.WriteByte(trackingAlphabet[g.rnd.Intn(len(trackingAlphabet))])
		}
		suffix := b.String()
		if _, ok := g.issued[suffix]; ok {
			continue
		}
		g.issued[suffix] = struct{}{}
		return fmt.Sprintf("%s-%s-%s", g.prefix, day, suffix), nil
	}
}
