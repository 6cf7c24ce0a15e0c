package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"modelo/internal/domain/auth"
	"modelo/internal/domain/chat"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestConnect_TranslatesUniqueViolation(t *testing.T) {
	db := setupDB(t)

	first := &auth.User{Email: "model@example.com", PasswordHash: "x", Role: auth.RoleModel, Name: "A"}
	require.NoError(t, db.Create(first).Error)

	second := &auth.User{Email: "model@example.com", PasswordHash: "y", Role: auth.RoleModel, Name: "B"}
	err := db.Create(second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestConnect_TranslatesPrimaryKeyViolation(t *testing.T) {
	db := setupDB(t)

	conv := &chat.Conversation{ID: "c_1_2", ParticipantA: 1, ParticipantB: 2}
	require.NoError(t, db.Create(conv).Error)

	dup := &chat.Conversation{ID: "c_1_2", ParticipantA: 1, ParticipantB: 2}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
