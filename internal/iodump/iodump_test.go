package iodump_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/internal/iodump"
	"github.com/gnames/gnlineage/internal/iotesting"
	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tinyNames = "1\t|\troot\t|\t\t|\tscientific name\t|\n" +
		"2\t|\tAus\t|\t\t|\tscientific name\t|\n" +
		"3\t|\tAus bus\t|\t\t|\tscientific name\t|\n"
	tinyNodes = "1\t|\t1\t|\tno rank\t|\t\t|\t8\t|\t0\t|\t1\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|\n" +
		"2\t|\t1\t|\tgenus\t|\t\t|\t8\t|\t0\t|\t1\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|\n" +
		"3\t|\t2\t|\tspecies\t|\t\t|\t8\t|\t0\t|\t1\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|\n"
)

func TestLoad(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	r, err := iodump.Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 30, r.Names().Len())
	assert.Equal(t, 19, r.Tree().Len())

	lin, err := r.Find("Pan troglodytes", true)
	require.NoError(t, err)
	assert.Equal(t, "Eukaryota, Metazoa, Chordata, Mammalia, Primates, "+
		"Hominidae, Pan, Pan troglodytes.", lin.String())
}

func TestLoadWithProgress(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	cfg.Update([]config.Option{config.OptWithProgress(true)})
	r, err := iodump.Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 19, r.Tree().Len())
}

func TestLoadCustomFiles(t *testing.T) {
	dir := iotesting.WriteDump(t, tinyNames, tinyNodes)
	cfg := iotesting.GetTestConfig(t)
	cfg.Update([]config.Option{config.OptDumpDir(dir)})

	r, err := iodump.Load(context.Background(), cfg)
	require.NoError(t, err)
	lin, err := r.Find("aus bus", false)
	require.NoError(t, err)
	assert.Equal(t, "Aus, Aus bus.", lin.String())
}

func TestLoadErrors(t *testing.T) {
	badNodes := "1\t|\t1\t|\tno rank\t|\n"

	tests := []struct {
		name  string
		names string
		nodes string
		opts  []config.Option
		code  gn.ErrorCode
	}{
		{"missing files", "", "",
			[]config.Option{config.OptDumpNamesFile("absent.dmp")},
			errcode.ReadFileError},
		{"short node record", tinyNames, badNodes, nil,
			errcode.ParseError},
		{"absent root", tinyNames, tinyNodes,
			[]config.Option{config.OptDumpRootID("42")},
			errcode.UnknownNodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := iotesting.WriteDump(t, tt.names, tt.nodes)
			cfg := iotesting.GetTestConfig(t)
			cfg.Update(append([]config.Option{config.OptDumpDir(dir)}, tt.opts...))

			r, err := iodump.Load(context.Background(), cfg)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, errcode.Is(err, tt.code), err.Error())
		})
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := iodump.Load(ctx, iotesting.GetTestConfig(t))
	assert.ErrorIs(t, err, context.Canceled)
}
