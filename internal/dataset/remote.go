package dataset

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const remoteTimeout = 30 * time.Second

// httpLimiter spaces out dataset downloads so repeated session restarts
// don't hammer a shared host.
var httpLimiter = rate.NewLimiter(rate.Every(time.Second), 3)

func fetchHTTP(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if err := httpLimiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "dataset: rate limiter")
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		cancel()
		return nil, eris.Wrapf(err, "dataset: build request for %s", rawURL)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, eris.Wrapf(err, "dataset: fetch %s", rawURL)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, eris.Errorf("dataset: fetch %s: status %d", rawURL, resp.StatusCode)
	}

	zap.L().Debug("dataset: fetched over http", zap.String("url", rawURL))
	return &cancelReadCloser{rc: resp.Body, cancel: cancel}, nil
}

// cancelReadCloser ties a request-scoped cancel func to the body's Close.
type cancelReadCloser struct {
	rc     io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Read(p []byte) (int, error) { return c.rc.Read(p) }

func (c *cancelReadCloser) Close() error {
	err := c.rc.Close()
	c.cancel()
	return err
}

func fetchFTP(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	host, path, err := parseFTPURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := ftp.Dial(host, ftp.DialWithContext(ctx), ftp.DialWithTimeout(remoteTimeout))
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: ftp dial %s", host)
	}

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		_ = conn.Quit()
		return nil, eris.Wrap(err, "dataset: ftp login")
	}

	resp, err := conn.Retr(path)
	if err != nil {
		_ = conn.Quit()
		return nil, eris.Wrapf(err, "dataset: ftp retrieve %s", path)
	}

	zap.L().Debug("dataset: fetched over ftp", zap.String("url", rawURL))
	return &ftpConnReader{resp: resp, conn: conn}, nil
}

func parseFTPURL(rawURL string) (host, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", eris.Wrap(err, "dataset: parse ftp url")
	}
	if u.Scheme != "ftp" {
		return "", "", eris.Errorf("dataset: expected ftp scheme, got %q", u.Scheme)
	}
	if u.Path == "" {
		return "", "", eris.New("dataset: empty path in ftp url")
	}

	host = u.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host = net.JoinHostPort(host, "21")
	}
	return host, u.Path, nil
}

// ftpConnReader closes both the transfer and the control connection when
// the caller is done reading.
type ftpConnReader struct {
	resp *ftp.Response
	conn *ftp.ServerConn
}

func (r *ftpConnReader) Read(p []byte) (int, error) { return r.resp.Read(p) }

func (r *ftpConnReader) Close() error {
	respErr := r.resp.Close()
	quitErr := r.conn.Quit()
	if respErr != nil {
		return respErr
	}
	return quitErr
}
