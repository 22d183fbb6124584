package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-voyage/pkg/client"
	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/integration"
	"github.com/adfharrison1/go-voyage/pkg/storage"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, driverFlag, pathFlag, providerFlag = "", "", "", ""

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seedTrip(t *testing.T, path string) string {
	t.Helper()
	ctx := context.Background()
	store, err := storage.Open(ctx, storage.DriverSQLite, path)
	require.NoError(t, err)
	c := client.New(store, integration.NewMockInvoker(0))
	trip, err := c.Trips.Create(ctx, domain.Trip{Name: "Mysore", Destination: "Mysore", StartDate: "2024-03-30"})
	require.NoError(t, err)
	require.NoError(t, c.Close())
	return trip.ID
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voyage.db")
	id := seedTrip(t, path)
	t.Setenv("VOYAGE_STORAGE_DRIVER", storage.DriverSQLite)

	out, err := runCmd(t, "generate", id, "--data", path)
	require.NoError(t, err)

	var days []domain.Itinerary
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	assert.Len(t, days, 2)

	_, err = runCmd(t, "generate", "missing", "--data", path)
	assert.Error(t, err)

	_, err = runCmd(t, "generate")
	assert.Error(t, err)
}

func TestResetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voyage.db")
	seedTrip(t, path)

	out, err := runCmd(t, "reset", "--driver", storage.DriverSQLite, "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "/login")

	ctx := context.Background()
	store, err := storage.Open(ctx, storage.DriverSQLite, path)
	require.NoError(t, err)
	c := client.New(store, integration.NewMockInvoker(0))
	defer c.Close()
	trips, err := c.Trips.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestUnknownProvider(t *testing.T) {
	_, err := runCmd(t, "reset", "--driver", storage.DriverMemory, "--provider", "oracle")
	assert.Error(t, err)
}
