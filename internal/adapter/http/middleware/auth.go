package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidActor = errors.New("token has no valid subject or role")
)

// Claims are the bearer token claims the service reads. Issuing tokens happens elsewhere.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth parses an HS256 bearer token and stores the caller as an entities.Actor in the context.
func Auth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return func(c *gin.Context) {
		actor, err := parseActor(parser, secret, c.GetHeader("Authorization"))
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles. It must run after Auth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if ok {
			for _, r := range roles {
				if actor.Role == r {
					c.Next()
					return
				}
			}
		}
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not allowed for this operation", http.StatusForbidden)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func parseActor(parser *jwt.Parser, secret []byte, header string) (entities.Actor, error) {
	raw, found := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return entities.Actor{}, errMissingToken
	}

	claims := &Claims{}
	_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return entities.Actor{}, err
	}

	role := entities.Role(strings.ToLower(strings.TrimSpace(claims.Role)))
	switch role {
	case entities.RoleCustomer, entities.RoleContractor, entities.RoleAdmin:
	default:
		return entities.Actor{}, errInvalidActor
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return entities.Actor{}, errInvalidActor
	}
	return entities.Actor{ID: claims.Subject, Role: role}, nil
}
