// Package controller implements the paquetes sync cycle: it lists packages
// into the table, saves the form as a create or an update, deletes after
// confirmation and loads a package into the form for editing.
package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/atinyakov/paquetes/internal/client/dialog"
	"github.com/atinyakov/paquetes/internal/client/transport"
	"github.com/atinyakov/paquetes/internal/client/view"
	"github.com/atinyakov/paquetes/internal/models"
	"go.uber.org/zap"
)

// User-facing texts.
const (
	GenericAlert      = "An error occurred while fetching data. Please try again."
	ValidationTitle   = "Error!"
	ValidationText    = "Por favor completa todos los campos."
	SuccessTitle      = "Exito!"
	DismissLabel      = "Cerrar"
	DeleteTitle       = "Esta seguro de eliminar el paquete?"
	DeleteAcceptLabel = "Eliminar"
)

// ErrUnknownAction is returned by Dispatch for an unregistered action kind.
var ErrUnknownAction = errors.New("unknown action")

// Controller coordinates the API, the presenter and the dialogs.
// Operations are serialized: overlapping calls run one after another.
type Controller struct {
	api       *transport.Client
	endpoints transport.Endpoints
	presenter view.Presenter
	notifier  dialog.Notifier
	confirmer dialog.Confirmer
	log       *zap.Logger

	mu       sync.Mutex
	handlers map[view.ActionKind]func(context.Context, string) error
}

// New constructs a Controller. A nil logger disables logging.
func New(
	api *transport.Client,
	endpoints transport.Endpoints,
	presenter view.Presenter,
	notifier dialog.Notifier,
	confirmer dialog.Confirmer,
	log *zap.Logger,
) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		api:       api,
		endpoints: endpoints,
		presenter: presenter,
		notifier:  notifier,
		confirmer: confirmer,
		log:       log,
	}
	c.handlers = map[view.ActionKind]func(context.Context, string) error{
		view.ActionEdit:   c.EditLoad,
		view.ActionDelete: c.Delete,
	}
	return c
}

// List fetches every package and replaces the table with one row per package.
func (c *Controller) List(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list(ctx)
}

func (c *Controller) list(ctx context.Context) error {
	pkgs, err := transport.FetchJSON[[]models.Package](ctx, c.api, http.MethodGet, c.endpoints.Collection(), nil)
	if err != nil {
		return c.fail(ctx, "list", err)
	}
	c.presenter.RenderTable(view.RowsFromPackages(pkgs))
	return nil
}

// Save creates the package when form has no ID and updates it otherwise.
// A form with a missing field is rejected before any request is made.
func (c *Controller) Save(ctx context.Context, form view.Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := form.Validate(); err != nil {
		c.notifier.Notify(ctx, dialog.Notification{
			Title:        ValidationTitle,
			Text:         ValidationText,
			Severity:     dialog.SeverityError,
			DismissLabel: DismissLabel,
		})
		return err
	}

	method, url := http.MethodPost, c.endpoints.Collection()
	if !form.IsNew() {
		method, url = http.MethodPut, c.endpoints.Item(form.ID)
	}

	res, err := transport.FetchJSON[models.MessageResponse](ctx, c.api, method, url, form.Input())
	if err != nil {
		return c.fail(ctx, "save", err)
	}

	c.presenter.ResetForm()
	c.notifier.Notify(ctx, dialog.Notification{
		Title:        SuccessTitle,
		Text:         res.Message,
		Severity:     dialog.SeveritySuccess,
		DismissLabel: DismissLabel,
	})
	return c.list(ctx)
}

// Delete removes the package with the given ID once the user confirms.
// Declining leaves everything untouched.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.confirmer.Confirm(ctx, dialog.Confirmation{
		Title:       DeleteTitle,
		AcceptLabel: DeleteAcceptLabel,
	})
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return nil
	}

	res, err := transport.FetchJSON[models.MessageResponse](ctx, c.api, http.MethodDelete, c.endpoints.Item(id), nil)
	if err != nil {
		return c.fail(ctx, "delete", err)
	}

	listErr := c.list(ctx)
	c.notifier.Notify(ctx, dialog.Notification{
		Title:    res.Message,
		Severity: dialog.SeveritySuccess,
	})
	return listErr
}

// EditLoad fetches one package and copies all of its fields into the form.
func (c *Controller) EditLoad(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := transport.FetchJSON[models.Package](ctx, c.api, http.MethodGet, c.endpoints.Item(id), nil)
	if err != nil {
		return c.fail(ctx, "edit", err)
	}
	c.presenter.SetForm(view.FormFromPackage(p))
	return nil
}

// Dispatch runs the handler registered for a row action.
func (c *Controller) Dispatch(ctx context.Context, a view.Action) error {
	h, ok := c.handlers[a.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}
	return h(ctx, a.ID)
}

// fail logs err and shows the generic alert. It returns err unchanged.
func (c *Controller) fail(ctx context.Context, op string, err error) error {
	c.log.Error("request failed", zap.String("op", op), zap.Error(err))
	c.notifier.Notify(ctx, dialog.Notification{
		Title:    GenericAlert,
		Severity: dialog.SeverityError,
	})
	return err
}
