package migration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pingate/internal/config"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

const testDSN = "postgres://pingate@localhost:5432/pingate"

func testConfig(migrations string) config.Storage {
	return config.Storage{
		DatabaseURI: testDSN,
		Migrations:  migrations,
	}
}

func TestMigration_Up_EmbeddedSource(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSrc source.Driver
	var gotDB string
	engine := func(src source.Driver, db string) (Migrator, error) {
		gotSrc, gotDB = src, db
		return mockM, nil
	}

	err := NewMigration(testConfig(""), engine).Up()

	require.NoError(t, err)
	assert.Equal(t, testDSN, gotDB)

	// вшитая схема начинается с kv_store
	first, err := gotSrc.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	r, ident, err := gotSrc.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "create_kv_store", ident)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_DirectorySource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_add_index.up.sql"), []byte("SELECT 1;"), 0600))

	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSrc source.Driver
	engine := func(src source.Driver, _ string) (Migrator, error) {
		gotSrc = src
		return mockM, nil
	}

	require.NoError(t, NewMigration(testConfig(dir), engine).Up())

	first, err := gotSrc.First()
	require.NoError(t, err)
	assert.Equal(t, uint(7), first)
}

func TestMigration_Up_MissingDirectory(t *testing.T) {
	engine := func(source.Driver, string) (Migrator, error) {
		t.Fatal("engine must not be called without a source")
		return nil, nil
	}

	err := NewMigration(testConfig(filepath.Join(t.TempDir(), "absent")), engine).Up()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration source")
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source.Driver, string) (Migrator, error) {
		return mockM, nil
	}

	assert.NoError(t, NewMigration(testConfig(""), engine).Up())
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, errors.New("conn reset"))

	engine := func(source.Driver, string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testConfig(""), engine).Up()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
	assert.Contains(t, err.Error(), "conn reset")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный DSN)
	engine := func(source.Driver, string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testConfig(""), engine).Up()

	require.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}
