package auth_repo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/utils"
)

const codeTTL = 10 * time.Minute

type CodeRepoContract interface {
	// StoreCode keeps the code under the requesting email with a TTL; a
	// later request for the same email overwrites the previous code.
	StoreCode(ctx context.Context, code entity.AccessCode) *app_error.AppError
	// GetCode returns (nil, nil) when no code is pending for the email.
	GetCode(ctx context.Context, email string) (*entity.AccessCode, *app_error.AppError)
	DeleteCode(ctx context.Context, email string) *app_error.AppError
}

type CodeRepo struct {
	Redis *redis.Client
}

func NewCodeRepo(rdb *redis.Client) CodeRepoContract {
	return &CodeRepo{Redis: rdb}
}

func codeKey(email string) string {
	return fmt.Sprintf("access_code:%s", email)
}

// CodeExpiry reports when a code issued now lapses.
func CodeExpiry(now time.Time) time.Time {
	return now.Add(codeTTL)
}

func (r *CodeRepo) StoreCode(ctx context.Context, code entity.AccessCode) *app_error.AppError {
	if err := utils.SetCacheData(ctx, r.Redis, codeKey(code.Email), &code, codeTTL); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, "failed to store access code", "redis")
	}
	return nil
}

func (r *CodeRepo) GetCode(ctx context.Context, email string) (*entity.AccessCode, *app_error.AppError) {
	return utils.GetCacheData[entity.AccessCode](ctx, r.Redis, codeKey(email))
}

func (r *CodeRepo) DeleteCode(ctx context.Context, email string) *app_error.AppError {
	if err := utils.DeleteCacheData(ctx, r.Redis, codeKey(email)); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, "failed to delete access code", "redis")
	}
	return nil
}
