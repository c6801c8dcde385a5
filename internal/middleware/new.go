package middleware

import (
	"comment-srv/config"
	"comment-srv/pkg/encrypter"
	"comment-srv/pkg/log"
	"comment-srv/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	cookieName  string
	serviceKeys map[string]string
	encrypter   encrypter.Encrypter
}

func New(l log.Logger, jwtManager scope.Manager, cookie config.CookieConfig, internal config.InternalConfig, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		cookieName:  cookie.Name,
		serviceKeys: internal.ServiceKeys,
		encrypter:   enc,
	}
}
