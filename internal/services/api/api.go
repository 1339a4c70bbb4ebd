// Package api provides the HTTP API for the application
package api

import (
	"gitpulse/internal/adapters/github"
	"gitpulse/internal/core/validation"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
	phttp "gitpulse/internal/platform/net/http"

	"gitpulse/internal/modkit"
	"gitpulse/internal/modkit/httpkit"
	"gitpulse/internal/modkit/module"
	"gitpulse/internal/modkit/swaggerkit"

	metamod "gitpulse/internal/services/api/meta/module"
	summarymod "gitpulse/internal/services/api/summary/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Commits        github.Provider
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:       opt.Config,
		Commits:   opt.Commits,
		Validator: validatorFromConfig(opt.Config),
	}

	mods := []module.Module{
		metamod.New(deps),
		summarymod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// validatorFromConfig layers env overrides on the default validation policy
func validatorFromConfig(cfg config.Conf) *validation.Validator {
	v := cfg.Prefix("VALIDATION_")
	return validation.New(validation.NewConfig(validation.Overrides{
		MaxRepositories:  v.OptInt("MAX_REPOSITORIES"),
		MaxDateRangeDays: v.OptInt("MAX_DATE_RANGE_DAYS"),
		MinDateRangeDays: v.OptInt("MIN_DATE_RANGE_DAYS"),
		MaxUsers:         v.OptInt("MAX_USERS"),
		MaxBranchLength:  v.OptInt("MAX_BRANCH_LENGTH"),
		AllowFutureDates: v.OptBool("ALLOW_FUTURE_DATES"),
	}))
}
