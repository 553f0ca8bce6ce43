// Package gateway performs create, update and delete calls against backend
// resources. It validates payloads before anything reaches the wire,
// enforces the confirm-before-delete contract, and never touches list
// state: callers refetch after a confirmed success.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/api"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
	"github.com/noah-isme/hei-admin-console/pkg/metrics"
)

// Operation names a mutation kind.
type Operation string

// Supported mutation operations.
const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// MutationRequest describes a single mutation. ResourceID is empty for
// creates. A request is consumed exactly once.
type MutationRequest struct {
	Operation  Operation
	Resource   string
	ResourceID string
	Payload    any
	Confirm    Confirmation
}

// Confirmation records that the user affirmed a destructive action. The
// zero value is unconfirmed; only Affirm produces a confirmed value, so a
// delete cannot reach the wire without an explicit confirmation step.
type Confirmation struct {
	affirmed bool
}

// Affirm returns a confirmed Confirmation.
func Affirm() Confirmation {
	return Confirmation{affirmed: true}
}

// Affirmed reports whether the confirmation was given.
func (c Confirmation) Affirmed() bool {
	return c.affirmed
}

// Gateway wraps mutations against the backend REST API.
type Gateway struct {
	client    *api.Client
	validator *validator.Validate
	logger    *zap.Logger
	recorder  *metrics.Recorder
}

// New creates a mutation gateway.
func New(client *api.Client, validate *validator.Validate, logger *zap.Logger, recorder *metrics.Recorder) *Gateway {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, validator: validate, logger: logger, recorder: recorder}
}

// Mutate performs one mutation and returns the raw entity payload from the
// response envelope, when the backend returns one.
func (g *Gateway) Mutate(ctx context.Context, req MutationRequest) (json.RawMessage, error) {
	switch req.Operation {
	case OpCreate:
		return g.Create(ctx, req.Resource, req.Payload)
	case OpUpdate:
		return g.Update(ctx, req.Resource, req.ResourceID, req.Payload)
	case OpDelete:
		return nil, g.Delete(ctx, req.Resource, req.ResourceID, req.Confirm)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown operation %q", req.Operation))
	}
}

// Create issues a POST with the payload as body.
func (g *Gateway) Create(ctx context.Context, resource string, payload any) (json.RawMessage, error) {
	if err := g.validate(payload); err != nil {
		return nil, err
	}
	body, err := g.client.Post(ctx, resource, payload)
	if err != nil {
		return nil, err
	}
	return decodeEntity(body)
}

// Update issues a PUT to the resource's per-id endpoint.
func (g *Gateway) Update(ctx context.Context, resource, id string, payload any) (json.RawMessage, error) {
	if err := g.validate(payload); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "update requires a resource id")
	}
	body, err := g.client.Put(ctx, resource+"/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeEntity(body)
}

// Delete issues a DELETE to the resource's per-id endpoint. The request is
// refused before any network activity unless confirm was affirmed.
func (g *Gateway) Delete(ctx context.Context, resource, id string, confirm Confirmation) error {
	if !confirm.Affirmed() {
		return appErrors.Clone(appErrors.ErrNotConfirmed, "")
	}
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "delete requires a resource id")
	}
	body, err := g.client.Delete(ctx, resource+"/"+id)
	if err != nil {
		return err
	}
	_, err = decodeEntity(body)
	return err
}

// validate runs struct validation when the payload is a struct; map and nil
// payloads pass through untouched.
func (g *Gateway) validate(payload any) error {
	if payload == nil {
		return nil
	}
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := g.validator.Struct(v.Interface()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	return nil
}

// decodeEntity tolerates empty bodies (204 deletes) and otherwise unwraps
// the envelope.
func decodeEntity(body []byte) (json.RawMessage, error) {
	if len(body) == 0 {
		return nil, nil
	}
	return envelope.Decode(body)
}
