// @title         GitPulse API
// @version       0.1.0
// @description   Commit activity summaries for GitHub repositories

package main

import (
	"context"

	"gitpulse/internal/adapters/github"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
	phttp "gitpulse/internal/platform/net/http"

	"gitpulse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (GITPULSE_API_*)
	root := config.New()
	apiCfg := root.Prefix("GITPULSE_API_")
	ghCfg := root.Prefix("GITPULSE_GITHUB_")

	// bring up logging early
	l := logger.Get()

	// GitHub-backed commit provider; token is optional but unauthenticated
	// requests run into much tighter rate limits
	commits, err := github.New(github.Options{
		Token:   ghCfg.MayString("TOKEN", ""),
		BaseURL: ghCfg.MayString("BASE_URL", ""),
		PerPage: ghCfg.MayInt("PER_PAGE", 100),
	})
	if err != nil {
		l.Panic().Err(err).Msg("github.New failed")
	}

	// http server (reads GITPULSE_API_PORT / GITPULSE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Commits:        commits,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
