package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"

	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/external/authprovider"
	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

const (
	actorKey          = "actor"
	tokenPresentedKey = "token_presented"

	defaultCookieName = "lifeline-session"
)

var allRoles = []schema.Role{schema.RoleAdmin, schema.RoleVolunteer, schema.RoleDonor}

// permission grants access to every path under prefix. A nil role set makes
// the path public. Shareable paths may also be reached with a share token in
// the `token` query, which the handler itself validates.
type permission struct {
	prefix    string
	roles     []schema.Role
	shareable bool
}

type permissionTable []permission

var defaultPermissions = newPermissionTable(
	permission{prefix: "/api/auth/register"},
	permission{prefix: "/api/auth/login"},
	permission{prefix: "/api/auth/logout"},
	permission{prefix: "/api/auth/me", roles: allRoles},
	permission{prefix: "/api/admin", roles: []schema.Role{schema.RoleAdmin}},
	permission{prefix: "/api/requests", roles: []schema.Role{schema.RoleAdmin, schema.RoleVolunteer}},
	permission{prefix: "/api/assignments", roles: []schema.Role{schema.RoleVolunteer, schema.RoleDonor}},
	permission{prefix: "/api/donations", roles: []schema.Role{schema.RoleAdmin, schema.RoleVolunteer}},
	permission{prefix: "/api/donations/complete", roles: []schema.Role{schema.RoleDonor}},
	permission{prefix: "/api/routes", roles: allRoles, shareable: true},
	permission{prefix: "/api/notifications", roles: allRoles},
)

// newPermissionTable sorts the entries so that the longest prefix is matched first
func newPermissionTable(entries ...permission) permissionTable {
	t := permissionTable(entries)
	sort.SliceStable(t, func(i, j int) bool {
		return len(t[i].prefix) > len(t[j].prefix)
	})
	return t
}

// lookup returns the entry of the longest prefix covering the path
func (t permissionTable) lookup(path string) (permission, bool) {
	for _, p := range t {
		if path == p.prefix || strings.HasPrefix(path, p.prefix+"/") {
			return p, true
		}
	}
	return permission{}, false
}

func (p permission) allows(role schema.Role) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// actorOf returns the caller resolved by the session middleware
func actorOf(c *gin.Context) *schema.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*schema.Actor)
	return actor
}

func sessionCookieName() string {
	if name := viper.GetString("auth.cookie_name"); name != "" {
		return name
	}
	return defaultCookieName
}

// sessionToken reads the access token from the session cookie or the
// `Authorization: Bearer` header
func sessionToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", fmt.Errorf("invalid authorization header")
		}
		return parts[1], nil
	}

	token, err := c.Cookie(sessionCookieName())
	if err != nil {
		return "", nil
	}
	return token, nil
}

// verifySession returns the user id carried by an access token. Tokens are
// verified with the shared secret when configured, otherwise the provider is
// asked.
func (s *Server) verifySession(c *gin.Context, token string) (uuid.UUID, error) {
	if len(s.jwtSecret) == 0 {
		user, err := s.auth.GetUser(c, token)
		if err != nil {
			return uuid.Nil, err
		}
		return user.ID, nil
	}

	claims := &jwt.StandardClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !t.Valid {
		return uuid.Nil, authprovider.ErrInvalidToken
	}

	return uuid.Parse(claims.Subject)
}

// sessionMiddleware resolves the caller of a request into an actor. It never
// rejects an unauthenticated request. That is left to permissionMiddleware.
// A malformed authorization header is ignored on public routes.
func (s *Server) sessionMiddleware(table permissionTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := log.WithField("middleware", "session")

		token, err := sessionToken(c)
		if err != nil {
			if entry, ok := table.lookup(c.Request.URL.Path); ok && entry.roles == nil {
				logger.WithError(err).Debug("ignore authorization header of a public route")
				c.Next()
				return
			}
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAuthorizationFormat, err)
			return
		}

		if token == "" {
			c.Next()
			return
		}
		c.Set(tokenPresentedKey, true)

		profileID, err := s.verifySession(c, token)
		if err != nil {
			logger.WithError(err).Debug("session rejected")
			c.Next()
			return
		}

		actor, err := s.store.GetActor(profileID)
		if gorm.IsRecordNotFoundError(err) {
			logger.WithField("profile", profileID).Debug("session without profile")
			c.Next()
			return
		} else if shouldInterupt(err, c) {
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// permissionMiddleware evaluates the permission table once per request
func (s *Server) permissionMiddleware(table permissionTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := table.lookup(c.Request.URL.Path)
		if ok && entry.roles == nil {
			c.Next()
			return
		}

		actor := actorOf(c)
		if actor == nil {
			if entry.shareable && c.Query("token") != "" {
				c.Next()
				return
			}

			if c.GetBool(tokenPresentedKey) {
				abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
			} else {
				abortWithEncoding(c, http.StatusUnauthorized, errorAuthenticationRequired)
			}
			return
		}

		if ok && !entry.allows(actor.Role()) {
			abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
			return
		}

		c.Next()
	}
}

func (s *Server) setSessionCookies(c *gin.Context, session authprovider.Session) {
	secure := viper.GetBool("auth.cookie_secure")
	name := sessionCookieName()
	c.SetCookie(name, session.AccessToken, session.ExpiresIn, "/", "", secure, true)
	if session.RefreshToken != "" {
		c.SetCookie(name+"-refresh", session.RefreshToken, 30*24*3600, "/", "", secure, true)
	}
}

// register signs up a donor or a volunteer
func (s *Server) register(c *gin.Context) {
	logger := log.WithField("api", "register")

	var params struct {
		Email      string      `json:"email" binding:"required,email"`
		Password   string      `json:"password" binding:"required,min=6"`
		FullName   string      `json:"fullName" binding:"required"`
		Phone      string      `json:"phone" binding:"required,bdphone"`
		Role       schema.Role `json:"role" binding:"required"`
		BloodGroup string      `json:"bloodGroup" binding:"omitempty,bloodgroup"`
		District   string      `json:"district"`
	}

	if !bindJSON(c, &params) {
		return
	}

	switch params.Role {
	case schema.RoleAdmin:
		abortWithEncoding(c, http.StatusBadRequest, errorAdminNotRegistrable)
		return
	case schema.RoleDonor:
		if params.BloodGroup == "" {
			resp := errorInvalidParameters
			resp.Fields = map[string]string{"bloodGroup": "required"}
			abortWithEncoding(c, http.StatusBadRequest, resp)
			return
		}
	case schema.RoleVolunteer:
	default:
		resp := errorInvalidParameters
		resp.Fields = map[string]string{"role": "oneof"}
		abortWithEncoding(c, http.StatusBadRequest, resp)
		return
	}

	var district, division string
	if params.District != "" {
		var err error
		district, division, err = consts.BdDistrict(params.District)
		if err != nil {
			resp := errorInvalidParameters
			resp.Fields = map[string]string{"district": "district"}
			abortWithEncoding(c, http.StatusBadRequest, resp, err)
			return
		}
	}

	user, err := s.auth.SignUp(c, params.Email, params.Password, map[string]interface{}{
		"full_name": params.FullName,
		"role":      params.Role,
	})
	if err == authprovider.ErrUserExists {
		abortWithEncoding(c, http.StatusConflict, errorProfileRegistered, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	profile := &schema.Profile{
		ID:       user.ID,
		Email:    params.Email,
		FullName: params.FullName,
		Phone:    params.Phone,
		Role:     params.Role,
	}
	actor := &schema.Actor{Profile: *profile}

	var donor *schema.Donor
	var volunteer *schema.Volunteer
	switch params.Role {
	case schema.RoleDonor:
		donor = &schema.Donor{
			ID:          uuid.New(),
			BloodGroup:  schema.BloodGroup(params.BloodGroup),
			IsAvailable: true,
			District:    district,
			Division:    division,
		}
		actor.DonorID = &donor.ID
	case schema.RoleVolunteer:
		volunteer = &schema.Volunteer{
			ID:       uuid.New(),
			IsActive: true,
			District: district,
		}
		actor.VolunteerID = &volunteer.ID
	}

	if err := s.store.RegisterProfile(profile, donor, volunteer); err != nil {
		if err == store.ErrProfileRegistered {
			abortWithEncoding(c, http.StatusConflict, errorProfileRegistered, err)
			return
		}
		logger.WithError(err).Error("cannot register profile")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	actor.Profile = *profile

	responseOK(c, actor)
}

// login exchanges credentials for a session stored in http only cookies
func (s *Server) login(c *gin.Context) {
	var params struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if !bindJSON(c, &params) {
		return
	}

	session, err := s.auth.SignIn(c, params.Email, params.Password)
	if err == authprovider.ErrInvalidCredentials {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	actor, err := s.store.GetActor(session.User.ID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	s.setSessionCookies(c, session)

	responseOK(c, gin.H{
		"actor":       actor,
		"accessToken": session.AccessToken,
		"expiresIn":   session.ExpiresIn,
	})
}

func (s *Server) logout(c *gin.Context) {
	secure := viper.GetBool("auth.cookie_secure")
	name := sessionCookieName()
	c.SetCookie(name, "", -1, "/", "", secure, true)
	c.SetCookie(name+"-refresh", "", -1, "/", "", secure, true)

	responseOK(c, gin.H{"loggedOut": true})
}

func (s *Server) me(c *gin.Context) {
	responseOK(c, actorOf(c))
}
