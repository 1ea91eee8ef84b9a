// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

const gzipEncoding = "gzip"

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), gzipEncoding) && r.Body != nil {
			if err := inflateRequest(r); err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), gzipEncoding) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		cw := &compressedWriter{ResponseWriter: w, zw: zw}
		defer func() {
			// an empty response must not get a gzip trailer
			if !cw.wroteHeader {
				zw.Reset(io.Discard)
			}
			zw.Close()
			gzipWriters.Put(zw)
		}()

		next.ServeHTTP(cw, r)
	})
}

// inflateRequest swaps the body of r for a pooled gzip reader.
func inflateRequest(r *http.Request) error {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &inflatedBody{Reader: zr, raw: r.Body}
	r.Header.Del("Content-Encoding")
	r.Header.Del("Content-Length")
	r.ContentLength = -1
	return nil
}

type inflatedBody struct {
	*gzip.Reader
	raw    io.Closer
	closed bool
}

func (b *inflatedBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.raw.Close()
}

type compressedWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (c *compressedWriter) WriteHeader(code int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	c.Header().Set("Content-Encoding", gzipEncoding)
	c.Header().Del("Content-Length")
	c.ResponseWriter.WriteHeader(code)
}

func (c *compressedWriter) Write(b []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	return c.zw.Write(b)
}
