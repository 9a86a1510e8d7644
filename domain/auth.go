package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/flixe/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Address   Address `json:"address" validate:"required,eth_addr"`
	Signature string  `json:"signature" validate:"required"`
}

type AuthUsecase interface {
	// SignIn verifies that signature was produced by address over the sign-in message and
	// returns a bearer token for it.
	SignIn(ctx ctx.Ctx, address Address, signature string) (string, error)
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
	Message() string
}
