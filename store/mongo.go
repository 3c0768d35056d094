package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-bd/lifeline-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// PositionLog - interface for the append only GPS history of routes
type PositionLog interface {
	AppendPosition(ctx context.Context, p *schema.RoutePosition) error
	RecentPositions(ctx context.Context, routeID uuid.UUID, limit int64) ([]schema.RoutePosition, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

type positionDocument struct {
	ID         string    `bson:"_id"`
	RouteID    string    `bson:"route_id"`
	Latitude   float64   `bson:"latitude"`
	Longitude  float64   `bson:"longitude"`
	Bearing    *float64  `bson:"bearing,omitempty"`
	Speed      *float64  `bson:"speed,omitempty"`
	Accuracy   *float64  `bson:"accuracy,omitempty"`
	RecordedAt time.Time `bson:"recorded_at"`
}

type MongoPositionLog struct {
	client   *mongo.Client
	database string
}

// NewMongoPositionLog - return a position log stored in mongodb
func NewMongoPositionLog(client *mongo.Client, database string) *MongoPositionLog {
	return &MongoPositionLog{
		client:   client,
		database: database,
	}
}

func (m *MongoPositionLog) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.RoutePositionCollection)
}

// EnsureIndexes creates the index serving the latest positions of a route
func (m *MongoPositionLog) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "route_id", Value: 1}, {Key: "recorded_at", Value: -1}},
	})
	return err
}

func (m *MongoPositionLog) AppendPosition(ctx context.Context, p *schema.RoutePosition) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection().InsertOne(ctx, positionDocument{
		ID:         p.ID.String(),
		RouteID:    p.RouteID.String(),
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Bearing:    p.Bearing,
		Speed:      p.Speed,
		Accuracy:   p.Accuracy,
		RecordedAt: p.RecordedAt,
	})
	return err
}

func (m *MongoPositionLog) RecentPositions(ctx context.Context, routeID uuid.UUID, limit int64) ([]schema.RoutePosition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection().Find(ctx, bson.M{"route_id": routeID.String()},
		options.Find().SetSort(bson.M{"recorded_at": -1}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	positions := []schema.RoutePosition{}
	for cursor.Next(ctx) {
		var doc positionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		id, err := uuid.Parse(doc.ID)
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("skip malformed position")
			continue
		}

		positions = append(positions, schema.RoutePosition{
			ID:         id,
			RouteID:    routeID,
			Latitude:   doc.Latitude,
			Longitude:  doc.Longitude,
			Bearing:    doc.Bearing,
			Speed:      doc.Speed,
			Accuracy:   doc.Accuracy,
			RecordedAt: doc.RecordedAt,
		})
	}

	return positions, cursor.Err()
}

// Close - close mongo db connections
func (m *MongoPositionLog) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// OrmPositionLog keeps the position history in the relational store when no
// mongodb is configured
type OrmPositionLog struct {
	ormDB *gorm.DB
}

func NewOrmPositionLog(ormDB *gorm.DB) *OrmPositionLog {
	return &OrmPositionLog{ormDB: ormDB}
}

func (o *OrmPositionLog) AppendPosition(_ context.Context, p *schema.RoutePosition) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return o.ormDB.Create(p).Error
}

func (o *OrmPositionLog) RecentPositions(_ context.Context, routeID uuid.UUID, limit int64) ([]schema.RoutePosition, error) {
	positions := []schema.RoutePosition{}
	if err := o.ormDB.Where("route_id = ?", routeID).
		Order("recorded_at DESC").Limit(limit).
		Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}
