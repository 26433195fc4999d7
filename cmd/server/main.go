package main

import (
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/ivanoskov/notes_app/internal/auth"
	"github.com/ivanoskov/notes_app/internal/config"
	"github.com/ivanoskov/notes_app/internal/repository"
	"github.com/ivanoskov/notes_app/internal/session"
	"github.com/ivanoskov/notes_app/internal/web"
)

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	providers := func() (auth.Provider, error) {
		return auth.NewSupabaseProvider(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	}
	repos := func(sess *session.Session) (repository.Repository, error) {
		return repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseAnonKey, sess.AccessToken)
	}

	srv, err := web.NewServer(providers, repos, log.StandardLogger())
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	srv.Register(e)

	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
