package identity

import (
	"fmt"
	"strings"

	"share-a-bite-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type (
	// Resolver produces the caller's claimed identity from request metadata,
	// or nil when no identity is asserted. Implementations decide how much
	// verification that claim gets.
	Resolver interface {
		Resolve(c *fiber.Ctx) *domain.UserIdentity
	}

	headerResolver struct{}

	tokenResolver struct {
		secretKey string
	}

	chainResolver struct {
		resolvers []Resolver
	}

	tokenClaims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
		jwt.RegisteredClaims
	}
)

// NewResolver builds the identity chain: a verified bearer token wins when a
// secret is configured, then the trusted x-user-* headers. Header identity is
// an explicit trust boundary; nothing about it is verified.
func NewResolver(jwtSecret string) Resolver {
	resolvers := make([]Resolver, 0, 2)
	if jwtSecret != "" {
		resolvers = append(resolvers, NewTokenResolver(jwtSecret))
	}
	resolvers = append(resolvers, NewHeaderResolver())
	return &chainResolver{resolvers: resolvers}
}

func NewHeaderResolver() Resolver {
	return &headerResolver{}
}

func NewTokenResolver(secretKey string) Resolver {
	return &tokenResolver{secretKey: secretKey}
}

func (r *chainResolver) Resolve(c *fiber.Ctx) *domain.UserIdentity {
	for _, resolver := range r.resolvers {
		if user := resolver.Resolve(c); user != nil {
			return user
		}
	}
	return nil
}

func (r *headerResolver) Resolve(c *fiber.Ctx) *domain.UserIdentity {
	email := strings.TrimSpace(c.Get("x-user-email"))
	if email == "" {
		return nil
	}
	name := c.Get("x-user-name")
	if name == "" {
		name = email
	}
	return &domain.UserIdentity{
		Email:   email,
		Name:    name,
		Picture: c.Get("x-user-picture"),
	}
}

func (r *tokenResolver) Resolve(c *fiber.Ctx) *domain.UserIdentity {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}
	tokenString := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, r.parseToken)
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil
	}
	name := claims.Name
	if name == "" {
		name = email
	}
	return &domain.UserIdentity{
		Email:   email,
		Name:    name,
		Picture: claims.Picture,
	}
}

func (r *tokenResolver) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(r.secretKey), nil
}
