package install

import (
	_ "embed"
	stderrors "errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zov-lang/zov/pkg/errors"
)

//go:embed embedded/setup.toml
var defaultManifest []byte

// ManifestFileName is looked up in the working directory when no explicit
// manifest path is given.
const ManifestFileName = "zov-setup.toml"

// Manifest describes what an install run should do.
type Manifest struct {
	Product           string `koanf:"product"`
	ExeName           string `koanf:"exe_name"`
	Scope             string `koanf:"scope"`
	InstallDir        string `koanf:"install_dir"`
	StartMenuShortcut bool   `koanf:"start_menu_shortcut"`
	RegisterPath      bool   `koanf:"register_path"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadManifest merges the embedded defaults with an optional manifest file.
// An empty path means "use ManifestFileName if it exists".
func LoadManifest(path string) (Manifest, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrConfigParse, "parse embedded setup defaults")
	}

	explicit := path != ""
	if path == "" {
		path = ManifestFileName
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Manifest{}, errors.Wrapf(err, errors.ErrConfigParse, "parse manifest %s", path)
		}
	} else if explicit {
		return Manifest{}, errors.Wrapf(err, errors.ErrConfigLoad, "read manifest %s", path)
	}

	var manifest Manifest
	if err := k.Unmarshal("", &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrConfigParse, "decode manifest")
	}

	if manifest.Product == "" {
		return Manifest{}, errors.New(errors.ErrConfigParse, "manifest product must not be empty")
	}
	if manifest.ExeName == "" {
		return Manifest{}, errors.New(errors.ErrConfigParse, "manifest exe_name must not be empty")
	}
	return manifest, nil
}
