package components

import (
	"groupcart/internal/pkg/clock"
	"groupcart/internal/usecase"
	"groupcart/internal/usecase/commands"
	"groupcart/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	// The quote service is the one place pricing snapshots are computed;
	// both the command side and the query side read through it.
	fx.Annotate(
		commands.NewQuoteService,
		fx.As(new(commands.QuoteService)),
		fx.As(new(queries.QuoteReader)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCollectionCommands,
		commands.NewParticipantCommands,
		commands.NewIntentCommands,
		commands.NewSettlementCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCollectionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
