package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JwtAuthenticator validates RS256 bearer tokens against a JWKS endpoint
// and extracts the marketplace identity from the claims. This is the single
// authentication contract of the service: sub, org_id and role claims.
type JwtAuthenticator struct {
	keyFn func(t *jwt.Token) (any, error)
}

func NewJwtAuthenticatorWithKeyFn(keyFn func(t *jwt.Token) (any, error)) (*JwtAuthenticator, error) {
	return &JwtAuthenticator{keyFn: keyFn}, nil
}

func NewJwtAuthenticator(jwkCertUrl string) (*JwtAuthenticator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwkCertUrl})
	if err != nil {
		return nil, fmt.Errorf("failed to get public keys: %w", err)
	}

	return &JwtAuthenticator{keyFn: k.Keyfunc}, nil
}

func (a *JwtAuthenticator) Authenticate(token string) (User, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}), jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	t, err := parser.Parse(token, a.keyFn)
	if err != nil {
		return User{}, fmt.Errorf("failed to authenticate token: %w", err)
	}

	if !t.Valid {
		return User{}, fmt.Errorf("failed to parse or validate token")
	}

	return a.parseToken(t)
}

func (a *JwtAuthenticator) parseToken(userToken *jwt.Token) (User, error) {
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, errors.New("failed to parse jwt token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return User{}, errors.New("token has no subject claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return User{}, errors.New("token has no role claim")
	}

	user := User{
		Subject: sub,
		Role:    Role(role),
	}

	// org_id identifies the clinic. It is absent for professionals.
	if orgID, ok := claims["org_id"].(string); ok {
		user.ClinicID = orgID
	}

	return user, nil
}

func (a *JwtAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.Header.Get("Authorization")
		if !strings.HasPrefix(accessToken, "Bearer ") {
			http.Error(w, "No token provided", http.StatusUnauthorized)
			return
		}

		accessToken = strings.TrimPrefix(accessToken, "Bearer ")
		user, err := a.Authenticate(accessToken)
		if err != nil {
			zap.S().Named("auth").Warnw("authentication failed", "error", err)
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}

		ctx := NewUserContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
