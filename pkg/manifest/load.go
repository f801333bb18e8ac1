package manifest

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads, validates and resolves the manifest at path. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(fs types.FS, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, withPath(err, path)
	}
	m.Source = path

	if err := m.Validate(); err != nil {
		return nil, withPath(err, path)
	}
	if err := m.resolve(filepath.Dir(path)); err != nil {
		return nil, err
	}

	logger.Debug().Str("manifest", m.String()).Msg("Loaded manifest")
	return m, nil
}

func withPath(err error, path string) error {
	if se, ok := err.(*errors.SetupError); ok {
		return se.WithDetail("path", path)
	}
	return err
}

// Parse decodes manifest data. ext selects the format. Unknown keys are
// rejected so typos do not silently drop targets.
func Parse(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestLoad, "failed to parse TOML manifest")
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrManifestLoad, "failed to parse YAML manifest")
		}
	default:
		return nil, errors.Newf(errors.ErrManifestLoad, "unsupported manifest format %q", ext).
			WithDetail("ext", ext)
	}
	return &m, nil
}

// resolve expands ~ and environment variables in target files and makes
// relative paths relative to the manifest's directory.
func (m *Manifest) resolve(base string) error {
	for i := range m.Blocks {
		p, err := paths.Expand(m.Blocks[i].File, base)
		if err != nil {
			return err
		}
		m.Blocks[i].File = p
	}
	for i := range m.Anchors {
		p, err := paths.Expand(m.Anchors[i].File, base)
		if err != nil {
			return err
		}
		m.Anchors[i].File = p
	}
	for i := range m.LaunchAgents {
		for j, arg := range m.LaunchAgents[i].Program {
			if strings.HasPrefix(arg, "~") {
				m.LaunchAgents[i].Program[j] = paths.ExpandHome(arg)
			}
		}
	}
	return nil
}
