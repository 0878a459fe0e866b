package services

import (
	"testing"

	"github.com/finmitra/backend/internal/identity"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// fakeChat records every call and returns a canned reply or error.
type fakeChat struct {
	reply   string
	err     error
	systems []string
	prompts []string
}

func (f *fakeChat) Send(system, prompt string) (string, error) {
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeExchanger struct {
	data *identity.SessionData
	err  error
}

func (f *fakeExchanger) Exchange(sessionID string) (*identity.SessionData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}
