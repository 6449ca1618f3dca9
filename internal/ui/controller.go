package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/storage"
	"github.com/misterclayt0n/overload/internal/utils"
)

// RecordStore is the persistence the controller needs. storage.ExerciseStore
// implements it.
type RecordStore interface {
	LoadAll(ctx context.Context) []models.ExerciseRecord
	Records(ctx context.Context) ([]models.ExerciseRecord, error)
	AppendBatch(ctx context.Context, records []models.ExerciseRecord) error
	DeleteByID(ctx context.Context, id string) error
}

// Controller turns user actions into store operations and renders the results.
type Controller struct {
	store  RecordStore
	out    io.Writer
	now    func() time.Time
	newID  func() string
	loc    *time.Location
	layout string
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithTimestampFormat sets how creation times are stored for display.
func WithTimestampFormat(loc *time.Location, layout string) Option {
	return func(c *Controller) {
		c.loc = loc
		c.layout = layout
	}
}

func NewController(store RecordStore, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		out:    out,
		now:    time.Now,
		newID:  uuid.NewString,
		loc:    time.Local,
		layout: "02/01/2006 15:04:05",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create validates the raw input and saves a new three-day progression.
// Validation failures are *models.InputError and leave the store untouched.
func (c *Controller) Create(ctx context.Context, name, max string) (models.ExerciseGroup, error) {
	input, err := models.ParseExerciseInput(name, max)
	if err != nil {
		return models.ExerciseGroup{}, err
	}

	id := c.newID()
	timestamp := utils.FormatTimestamp(c.now(), c.loc, c.layout)
	records := models.NewExerciseRecords(id, input.Name, input.Max, timestamp)

	if err := c.store.AppendBatch(ctx, records); err != nil {
		return models.ExerciseGroup{}, fmt.Errorf("failed to save exercise: %w", err)
	}

	return storage.GroupByID(records)[0], nil
}

// Groups returns every saved exercise, most recent first.
func (c *Controller) Groups(ctx context.Context) []models.ExerciseGroup {
	return storage.NewestFirst(storage.GroupByID(c.store.LoadAll(ctx)))
}

// Find resolves an id or unique id prefix to a saved exercise.
func (c *Controller) Find(ctx context.Context, idOrPrefix string) (models.ExerciseGroup, error) {
	return storage.FindGroup(c.Groups(ctx), idOrPrefix)
}

// Delete removes the exercise selected by id or unique id prefix. ok is false when
// nothing matched, which is not an error. An unreadable store is.
func (c *Controller) Delete(ctx context.Context, idOrPrefix string) (deleted models.ExerciseGroup, ok bool, err error) {
	records, err := c.store.Records(ctx)
	if err != nil {
		return models.ExerciseGroup{}, false, err
	}

	g, err := storage.FindGroup(storage.GroupByID(records), idOrPrefix)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ExerciseGroup{}, false, nil
	}
	if err != nil {
		return models.ExerciseGroup{}, false, err
	}

	if err := c.store.DeleteByID(ctx, g.ID); err != nil {
		return models.ExerciseGroup{}, false, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return g, true, nil
}

// History renders saved exercises, most recent first. A positive limit caps how many
// are shown.
func (c *Controller) History(ctx context.Context, limit int) {
	groups := c.Groups(ctx)
	total := len(groups)
	if limit > 0 && limit < total {
		groups = groups[:limit]
	}

	RenderHistory(c.out, groups)
	if len(groups) < total {
		magenta := color.New(color.FgMagenta).SprintFunc()
		fmt.Fprintln(c.out, magenta(fmt.Sprintf("Showing %d of %d exercises.", len(groups), total)))
	}
}

func (c *Controller) Show(ctx context.Context, idOrPrefix string) error {
	g, err := c.Find(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	RenderGroup(c.out, g)
	return nil
}

// Preview renders the progression for a raw max value.
func (c *Controller) Preview(max string) error {
	m, err := models.ParseMax(max)
	if err != nil {
		return err
	}
	RenderPreview(c.out, m)
	return nil
}
