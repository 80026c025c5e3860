package install

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/zov-lang/zov/pkg/errors"
	"github.com/zov-lang/zov/pkg/logging"
)

// Deployer copies the payload executable into the install directory.
type Deployer struct {
	fs afero.Fs
}

// NewDeployer creates a Deployer over the real filesystem.
func NewDeployer() *Deployer {
	return &Deployer{fs: afero.NewOsFs()}
}

// NewDeployerFs creates a Deployer over the given filesystem, for tests.
func NewDeployerFs(fs afero.Fs) *Deployer {
	return &Deployer{fs: fs}
}

// Deploy copies src to dst, creating parent directories. The destination is
// replaced if it already exists, so re-running an install refreshes the
// payload in place.
func (d *Deployer) Deploy(src, dst, dstDir string) error {
	logger := logging.GetLogger("install.deployer")

	if err := d.fs.MkdirAll(dstDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDeploy, "create install directory %s", dstDir)
	}

	in, err := d.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDeploy, "open payload %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := d.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDeploy, "create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrDeploy, "copy payload to %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrDeploy, "flush %s", dst)
	}

	logger.Info().Str("src", src).Str("dst", dst).Msg("payload deployed")
	return nil
}
