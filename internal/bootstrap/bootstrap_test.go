package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vide/internal/logger"
	"vide/internal/style"
	"vide/internal/toolkit"
	"vide/internal/toolkit/fyneapp"
)

// events is shared by the fakes so tests can assert on ordering.
type events []string

func (e *events) add(s string) { *e = append(*e, s) }

type fakeDisplay struct {
	log       *events
	providers []*style.Provider
}

func (d *fakeDisplay) Name() string { return "fake" }

func (d *fakeDisplay) AddProvider(src style.Source, priority style.Priority) {
	d.log.add(fmt.Sprintf("provider@%s", priority))
	d.providers = append(d.providers, src.(*style.Provider))
}

type fakeApp struct {
	display *fakeDisplay
	err     error
}

func (a *fakeApp) Display() (toolkit.Display, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.display, nil
}

func (a *fakeApp) NewWindow(title string) fyne.Window { return nil }
func (a *fakeApp) Quit(code int)                      {}

type fakeBuilder struct {
	log   *events
	calls int
	err   error
}

func (b *fakeBuilder) Build(app toolkit.Application) error {
	b.calls++
	b.log.add("build")
	return b.err
}

// fakeRunner mimics the toolkit: startup, one activation, then the loop
// "returns" code.
type fakeRunner struct {
	app  toolkit.Application
	code int
}

func (r *fakeRunner) Run(l toolkit.Lifecycle) int {
	if err := l.OnStartup(r.app); err != nil {
		return 1
	}
	if err := l.OnActivate(r.app); err != nil {
		return 1
	}
	return r.code
}

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFakes() (*events, *fakeApp, *fakeBuilder) {
	ev := &events{}
	return ev, &fakeApp{display: &fakeDisplay{log: ev}}, &fakeBuilder{log: ev}
}

func TestStyleRegisteredBeforeWindowBuilt(t *testing.T) {
	ev, app, builder := newFakes()
	b := New(builder, WithStylesheet(writeSheet(t, `window { color: #fff; }`)))

	code := b.Run(&fakeRunner{app: app, code: 0})

	assert.Zero(t, code)
	assert.Equal(t, events{"provider@application", "build"}, *ev)
	assert.Equal(t, 1, builder.calls)
	require.Len(t, app.display.providers, 1)
	assert.Equal(t, 1, app.display.providers[0].Len())
	assert.Equal(t, Terminated, b.State())
}

func TestExitCodeComesFromRunner(t *testing.T) {
	_, app, builder := newFakes()
	b := New(builder, WithStylesheet(writeSheet(t, ``)))

	assert.Equal(t, 42, b.Run(&fakeRunner{app: app, code: 42}))
	assert.Equal(t, 1, builder.calls)
}

func TestNoDisplayFailsBeforeBuild(t *testing.T) {
	_, app, builder := newFakes()
	app.err = fmt.Errorf("%w: test", toolkit.ErrNoDisplay)
	b := New(builder)

	err := b.OnStartup(app)
	require.ErrorIs(t, err, toolkit.ErrNoDisplay)
	assert.Equal(t, Uninitialized, b.State())

	assert.NotZero(t, b.Run(&fakeRunner{app: app}))
	assert.Zero(t, builder.calls)
}

func TestMissingStylesheetStillActivates(t *testing.T) {
	ev, app, builder := newFakes()
	rec := logger.NewRecorder()
	b := New(builder,
		WithLogger(rec),
		WithStylesheet(filepath.Join(t.TempDir(), "deleted.css")),
	)

	code := b.Run(&fakeRunner{app: app})

	assert.Zero(t, code)
	assert.Equal(t, 1, builder.calls)
	assert.Equal(t, events{"provider@application", "build"}, *ev)
	assert.Equal(t, 1, rec.Count(logger.WarnLevel))
	assert.Zero(t, b.Provider().Len())
}

func TestMalformedStylesheetStillActivates(t *testing.T) {
	_, app, builder := newFakes()
	rec := logger.NewRecorder()
	b := New(builder,
		WithLogger(rec),
		WithStylesheet(writeSheet(t, `window { background-color: #12; font-size: 14px; }`)),
	)

	require.NoError(t, b.OnStartup(app))
	require.NoError(t, b.OnActivate(app))

	assert.Equal(t, 1, rec.Count(logger.WarnLevel))
	assert.Equal(t, 1, b.Provider().Len())
	assert.Equal(t, Activated, b.State())
}

func TestActivateBeforeStartup(t *testing.T) {
	_, app, builder := newFakes()
	b := New(builder)

	err := b.OnActivate(app)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Zero(t, builder.calls)
}

func TestRepeatedActivationDelegatesEachTime(t *testing.T) {
	_, app, builder := newFakes()
	b := New(builder, WithStylesheet(writeSheet(t, ``)))

	require.NoError(t, b.OnStartup(app))
	require.NoError(t, b.OnActivate(app))
	require.NoError(t, b.OnActivate(app))

	assert.Equal(t, 2, builder.calls)
	assert.Equal(t, Activated, b.State())
}

func TestBuilderErrorIsReturned(t *testing.T) {
	_, app, builder := newFakes()
	builder.err = errors.New("no layout")
	b := New(builder, WithStylesheet(writeSheet(t, ``)))

	require.NoError(t, b.OnStartup(app))
	err := b.OnActivate(app)
	assert.ErrorContains(t, err, "no layout")
	assert.Equal(t, Started, b.State())
}

func TestUnsupportedRulesAreReported(t *testing.T) {
	_, app, builder := newFakes()
	rec := logger.NewRecorder()
	path := writeSheet(t, `
.toolbar:hover { background-color: #000; }
window { color: #fff; text-shadow: none; }
`)
	b := New(builder, WithLogger(rec), WithStylesheet(path))

	require.NoError(t, b.OnStartup(app))

	require.Equal(t, 1, rec.Count(logger.WarnLevel))
	var warning logger.Entry
	for _, e := range rec.Entries() {
		if e.Level == logger.WarnLevel {
			warning = e
		}
	}
	assert.Equal(t, "unsupported stylesheet rules ignored", warning.Message)
	assert.Equal(t, path, warning.Fields["path"])
	assert.Equal(t, 2, warning.Fields["ignored"])
	assert.Equal(t, 1, b.Provider().Len())
}

func TestDefaultStylesheetPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "style.css"), []byte(`button { background-color: #333; }`), 0o644))
	t.Chdir(dir)

	_, app, builder := newFakes()
	b := New(builder)
	require.NoError(t, b.OnStartup(app))
	assert.Equal(t, StylesheetPath, b.Provider().Origin())
	assert.Equal(t, 1, b.Provider().Len())
}

type windowCounter struct {
	windows []fyne.Window
}

func (w *windowCounter) Build(app toolkit.Application) error {
	win := app.NewWindow("Vide")
	w.windows = append(w.windows, win)
	return nil
}

func TestRunOnFyne(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	app := fyneapp.NewWithApp(fyneApp, logger.Nop{},
		fyneapp.WithDisplayResolver(func() (string, error) { return ":0", nil }))
	builder := &windowCounter{}
	b := New(builder, WithStylesheet(writeSheet(t, `window { background-color: #000000; }`)))

	code := b.Run(app)

	assert.Zero(t, code)
	assert.Len(t, builder.windows, 1)
	bg := fyneApp.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantLight)
	r, g, bl, a := bg.RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, bl, a})
}

func TestRunOnFyneWithoutDisplay(t *testing.T) {
	app := fyneapp.NewWithApp(test.NewTempApp(t), logger.Nop{},
		fyneapp.WithDisplayResolver(func() (string, error) { return "", toolkit.ErrNoDisplay }))
	builder := &windowCounter{}

	assert.Equal(t, 1, New(builder).Run(app))
	assert.Empty(t, builder.windows)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "started", Started.String())
	assert.Equal(t, "State(9)", State(9).String())
}
