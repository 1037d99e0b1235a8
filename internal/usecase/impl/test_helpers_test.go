package impl

import (
	"context"
	"io"
	"log/slog"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func plannerPrincipal(userID uint) *entity.Principal {
	return &entity.Principal{
		UserID:       userID,
		Username:     "planner",
		Capabilities: entity.Capabilities{entity.CapabilityPlanner},
	}
}

func vendorPrincipal(userID uint) *entity.Principal {
	return &entity.Principal{
		UserID:       userID,
		Username:     "vendor",
		Capabilities: entity.Capabilities{entity.CapabilityVendor},
	}
}

func plainPrincipal(userID uint) *entity.Principal {
	return &entity.Principal{UserID: userID, Username: "guest"}
}

// expectTransaction makes txManager run the callback against repoFactory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repoFactory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
