package inspect

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pranshuparmar/bundlecheck/internal/bundle"
	"github.com/pranshuparmar/bundlecheck/internal/config"
	"github.com/pranshuparmar/bundlecheck/internal/manifest"
	"github.com/pranshuparmar/bundlecheck/internal/provision"
	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

const (
	LabelRuntime   = "Bundle.main"
	LabelProfile   = "Provisioning profile"
	LabelTeam      = "Signing team"
	LabelReadError = "Read error"
)

const (
	ValueNotAvailable   = "not available"
	ValueFileNotFound   = "file not found"
	ValueNotPresent     = "not present (possibly a non-device environment)"
	ValueAppIDNotFound  = "AppID field not found"
	ValueParseKeyFailed = "failed to parse key"
)

// Inspector reads the identity of one bundle from the runtime, its
// Info.plist and its provisioning profile
type Inspector struct {
	env    bundle.Environment
	cfg    config.Config
	logger *slog.Logger
}

type Option func(*Inspector)

func WithConfig(cfg config.Config) Option {
	return func(i *Inspector) {
		i.cfg = cfg
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Inspector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func New(env bundle.Environment, opts ...Option) *Inspector {
	i := &Inspector{
		env:    env,
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run inspects the bundle and adds consistency warnings
func (i *Inspector) Run() model.Result {
	lines := i.Inspect()
	res := model.Result{
		Lines:    lines,
		Warnings: Warnings(lines),
	}
	if r, ok := i.env.(interface{ Root() string }); ok {
		res.Bundle = r.Root()
	}
	return res
}

// Inspect performs the three lookups in order. A failing lookup turns into a
// line describing the failure, it never stops the ones after it.
func (i *Inspector) Inspect() []model.ResultLine {
	var lines []model.ResultLine
	lines = append(lines, i.runtimeLine())
	lines = append(lines, i.manifestLine())
	lines = append(lines, i.descriptorLines()...)
	return lines
}

func (i *Inspector) runtimeLine() model.ResultLine {
	line := model.ResultLine{Layer: model.LayerAPI, Label: LabelRuntime}

	id, ok := i.env.BundleIdentifier()
	if !ok {
		i.logger.Debug("runtime identifier not available")
		line.Value = ValueNotAvailable
		line.Status = model.StatusNotAvailable
		return line
	}
	line.Value = id
	line.Status = model.StatusOK
	return line
}

func (i *Inspector) manifestLine() model.ResultLine {
	res := i.cfg.Manifest
	line := model.ResultLine{Layer: model.LayerFile, Label: res.FileName()}

	notFound := func(reason string, err error) model.ResultLine {
		i.logger.Debug("manifest lookup failed", "file", res.FileName(), "reason", reason, "error", err)
		line.Value = ValueFileNotFound
		line.Status = model.StatusNotFound
		return line
	}

	path, ok := i.env.PathForResource(res.Name, res.Ext)
	if !ok {
		return notFound("missing", nil)
	}
	data, err := i.env.ReadFile(path)
	if err != nil {
		return notFound("unreadable", err)
	}
	id, err := manifest.ReadString(data, res.Key)
	if err != nil {
		return notFound("no identifier", err)
	}

	line.Value = id
	line.Status = model.StatusOK
	return line
}

func (i *Inspector) descriptorLines() []model.ResultLine {
	desc := i.cfg.Descriptor

	path, ok := i.env.PathForResource(desc.Name, desc.Ext)
	if !ok {
		i.logger.Debug("provisioning profile not present", "file", desc.FileName())
		return []model.ResultLine{{
			Layer:  model.LayerCertificate,
			Label:  LabelProfile,
			Value:  ValueNotPresent,
			Status: model.StatusNotPresent,
		}}
	}

	data, err := i.env.ReadFile(path)
	if err != nil {
		i.logger.Debug("provisioning profile unreadable", "path", path, "error", err)
		return []model.ResultLine{{
			Layer:  model.LayerCertificate,
			Label:  LabelReadError,
			Value:  err.Error(),
			Status: model.StatusReadError,
		}}
	}

	content := provision.Decode(data)
	lines := []model.ResultLine{i.appIDLine(content)}

	// a team name that cannot be read is left out rather than reported
	team, err := provision.ExtractWith(content, desc.TeamNameMarker, desc.OpenDelimiter, desc.CloseDelimiter)
	if err != nil {
		i.logger.Debug("team name skipped", "error", err)
		return lines
	}
	return append(lines, model.ResultLine{
		Layer:  model.LayerCertificate,
		Label:  LabelTeam,
		Value:  team,
		Status: model.StatusOK,
	})
}

func (i *Inspector) appIDLine(content string) model.ResultLine {
	desc := i.cfg.Descriptor
	line := model.ResultLine{Layer: model.LayerCertificate, Label: LabelProfile}

	appID, err := provision.ExtractWith(content, desc.AppIDMarker, desc.OpenDelimiter, desc.CloseDelimiter)
	switch {
	case errors.Is(err, provision.ErrMarkerNotFound):
		line.Value = ValueAppIDNotFound
		line.Status = model.StatusFieldNotFound
	case err != nil:
		line.Value = ValueParseKeyFailed
		line.Status = model.StatusParseFailed
	default:
		line.Value = appID
		line.Status = model.StatusOK
	}
	if err != nil {
		i.logger.Debug("application identifier unreadable", "error", err)
	}
	return line
}
