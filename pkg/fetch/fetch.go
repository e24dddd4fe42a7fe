package fetch

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// IsRemote reports whether the input names an HTTP(S) resource rather
// than a local file.
func IsRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func New(dir string, logger *zap.Logger) (*Fetcher, error) {
	f := &Fetcher{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	if dir == "" {
		return f, nil
	}

	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	f.fs = afero.NewBasePathFs(fs, dir)

	return f, nil
}

// Fetcher downloads remote image inputs, optionally spooling them into
// a temp directory for the pipeline to read back.
type Fetcher struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func (f *Fetcher) Get(rawurl string) ([]byte, error) {
	resp, err := f.cli.R().Get(rawurl)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", rawurl))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	f.log.With(
		zap.String("url", rawurl),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("downloaded")

	return buf.Bytes(), nil
}

// Spool downloads rawurl into the temp directory and returns the real
// path of the spooled copy.
func (f *Fetcher) Spool(rawurl string) (string, error) {
	if f.fs == nil {
		return "", errors.New("no temp dir configured")
	}

	bs, err := f.Get(rawurl)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(rawurl)
	if err != nil {
		return "", err
	}

	name := xid.New().String() + path.Ext(u.Path)
	if err := afero.WriteFile(f.fs, name, bs, 0644); err != nil {
		return "", err
	}

	p, _ := f.fs.(*afero.BasePathFs).RealPath(name)
	return p, nil
}
