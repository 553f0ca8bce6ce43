package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

type assignPayload struct {
	RoleID       string `json:"role_id" validate:"required"`
	PermissionID string `json:"permission_id" validate:"required"`
}

func TestBulkCreateReportsPartialFailure(t *testing.T) {
	var mu sync.Mutex
	var created []string
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload assignPayload
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload.PermissionID == "p3" {
			_, _ = w.Write([]byte(`{"success":false,"error":"permission already assigned"}`))
			return
		}
		mu.Lock()
		created = append(created, payload.PermissionID)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	payloads := []any{
		assignPayload{RoleID: "r1", PermissionID: "p1"},
		assignPayload{RoleID: "r1", PermissionID: "p2"},
		assignPayload{RoleID: "r1", PermissionID: "p3"},
		assignPayload{RoleID: "r1", PermissionID: "p4"},
		assignPayload{RoleID: "r1", PermissionID: "p5"},
	}

	result := gw.BulkCreate(context.Background(), "role-permissions", payloads)

	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)

	err := result.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrPartialBatch))
	assert.Equal(t, "1 item failed", appErrors.FromError(err).Message)

	// The succeeded subset stays created, no rollback.
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, created, 4)
}

func TestBatchResultMessagePluralises(t *testing.T) {
	one := BatchResult{Succeeded: 3, Failed: 1}
	assert.Equal(t, "1 item failed", appErrors.FromError(one.Err()).Message)

	many := BatchResult{Succeeded: 1, Failed: 2}
	assert.Equal(t, "2 items failed", appErrors.FromError(many.Err()).Message)
}

func TestBulkCreateAllSucceed(t *testing.T) {
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	result := gw.BulkCreate(context.Background(), "role-permissions", []any{
		assignPayload{RoleID: "r1", PermissionID: "p1"},
		assignPayload{RoleID: "r1", PermissionID: "p2"},
	})

	assert.Equal(t, 2, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.NoError(t, result.Err())
}

func TestBulkCreateEmptyInput(t *testing.T) {
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	}))

	result := gw.BulkCreate(context.Background(), "role-permissions", nil)
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.NoError(t, result.Err())
}
