package intakeservice

import (
	"log/slog"

	httpadapter "clawdrop/contexts/claims/intake-service/adapters/http"
	"clawdrop/contexts/claims/intake-service/adapters/mail"
	"clawdrop/contexts/claims/intake-service/adapters/memory"
	randadapter "clawdrop/contexts/claims/intake-service/adapters/rand"
	"clawdrop/contexts/claims/intake-service/application/commands"
	"clawdrop/contexts/claims/intake-service/application/queries"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
)

type Module struct {
	Handler    httpadapter.Handler
	Process    commands.ProcessSubmissionUseCase
	Verify     commands.VerifyEmailUseCase
	Distribute commands.DistributeTokensUseCase
	Queries    queries.RegistryQueries
	Store      *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Tokens     ports.TokenGenerator
	Mailer     ports.Mailer
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	process := commands.ProcessSubmissionUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Tokens:     deps.Tokens,
		Mailer:     deps.Mailer,
		Events:     deps.Events,
		Logger:     deps.Logger,
	}
	verify := commands.VerifyEmailUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Events:     deps.Events,
		Logger:     deps.Logger,
	}
	distribute := commands.DistributeTokensUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Tokens:     deps.Tokens,
		Mailer:     deps.Mailer,
		Events:     deps.Events,
		Logger:     deps.Logger,
	}
	registryQueries := queries.RegistryQueries{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Process:    process,
			Verify:     verify,
			Distribute: distribute,
			Queries:    registryQueries,
			Logger:     deps.Logger,
		},
		Process:    process,
		Verify:     verify,
		Distribute: distribute,
		Queries:    registryQueries,
	}
}

// NewInMemoryModule wires the module against the in-memory store with a
// log-only mail transport. Used by tests and local experiments.
func NewInMemoryModule(seed []entities.Submission, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	clock := randadapter.SystemClock{}
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      clock,
		IDGen:      randadapter.Generator{},
		Tokens:     randadapter.Generator{},
		Mailer: mail.Mailer{
			Sender:        mail.LogSender{Logger: logger},
			VerifyBaseURL: "http://localhost:8080",
			Clock:         clock,
			Logger:        logger,
		},
		Logger: logger,
	})
	module.Store = store
	return module
}
