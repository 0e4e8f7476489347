package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/queries"
	"proacolhe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userSQLiteRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewUserSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	return &userSQLiteRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var role, createdAt, updatedAt string
	err := row.Scan(
		&user.ID, &user.Name, &user.SusNumber, &role,
		&user.Username, &user.Password, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = models.Role(role)
	user.CreatedAt = database.ParseSQLiteTime(createdAt)
	user.UpdatedAt = database.ParseSQLiteTime(updatedAt)
	return &user, nil
}

func (r *userSQLiteRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, queries.CreateUserQuery,
		user.ID, user.Name, user.SusNumber, string(user.Role), user.Username, user.Password,
		database.FormatSQLiteTime(user.CreatedAt), database.FormatSQLiteTime(user.UpdatedAt),
	)
	if database.IsUniqueViolation(err) {
		return exceptions.ErrUsernameAlreadyExist(err)
	}
	if err != nil {
		r.Log.Error("userSQLiteRepository.CreateUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteInsertData(err)
	}
	return nil
}

func (r *userSQLiteRepository) UpdateUser(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserQuery,
		user.Name, user.SusNumber, string(user.Role), user.Username, user.Password,
		database.FormatSQLiteTime(user.UpdatedAt), user.ID,
	)
	if database.IsUniqueViolation(err) {
		return exceptions.ErrUsernameAlreadyExist(err)
	}
	if err != nil {
		r.Log.Error("userSQLiteRepository.UpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteUpdateData(err)
	}
	return nil
}

func (r *userSQLiteRepository) DeleteByID(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteUserByIDQuery, userID)
	if err != nil {
		return exceptions.ErrSQLiteDeleteData(err)
	}
	return nil
}

func (r *userSQLiteRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findByField(ctx, "id", userID)
}

func (r *userSQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findByField(ctx, "username", username)
}

func (r *userSQLiteRepository) findByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(queries.FindUserByFieldQueryTemplate, field)
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	return user, nil
}

func (r *userSQLiteRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, queries.FindAllUsersQuery)
	if err != nil {
		return nil, exceptions.ErrSQLiteFindData(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, exceptions.ErrSQLiteIterateDataset(err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrSQLiteIterateDataset(err)
	}
	return users, nil
}

func (r *userSQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, queries.CountUsersQuery).Scan(&count); err != nil {
		return 0, exceptions.ErrSQLiteFindData(err)
	}
	return count, nil
}

func (r *userSQLiteRepository) DeleteAllExcept(ctx context.Context, keepUserID string) (int, error) {
	result, err := r.DB.ExecContext(ctx, queries.DeleteUsersExceptQuery, keepUserID)
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrSQLiteDeleteData(err)
	}
	return int(deleted), nil
}
