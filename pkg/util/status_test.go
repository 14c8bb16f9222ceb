package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusWrapPrependsMessage(t *testing.T) {
	base := status.Error(codes.NotFound, "no such file")
	wrapped := StatusWrap(base, "Lstat on \"/a/b\"")
	require.EqualError(t, wrapped, `rpc error: code = NotFound desc = Lstat on "/a/b": no such file`)
	require.Equal(t, codes.NotFound, status.Code(wrapped))
}

func TestStatusWrapfFormatsPrefix(t *testing.T) {
	base := status.Error(codes.Unknown, "boom")
	wrapped := StatusWrapf(base, "Readdir on %#v", "/x")
	require.Contains(t, wrapped.Error(), `Readdir on "/x": boom`)
}

func TestStatusWrapWithCodeReplacesCode(t *testing.T) {
	base := status.Error(codes.Unknown, "boom")
	wrapped := StatusWrapWithCode(base, codes.Internal, "wrapped")
	require.Equal(t, codes.Internal, status.Code(wrapped))
}
