package evaluator

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-zglob"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	commonconfig "github.com/armadaproject/datacenter/internal/common/config"
)

// PlacementSpecsFromPattern reads every placement spec file matching pattern, in lexical order of file path.
func PlacementSpecsFromPattern(pattern string) ([]*PlacementSpec, error) {
	filePaths, err := zglob.Glob(pattern)
	if err != nil {
		return nil, errors.WithMessagef(err, "no placement specs match %s", pattern)
	}
	slices.Sort(filePaths)
	return PlacementSpecsFromFilePaths(filePaths)
}

func PlacementSpecsFromFilePaths(filePaths []string) ([]*PlacementSpec, error) {
	rv := make([]*PlacementSpec, len(filePaths))
	for i, filePath := range filePaths {
		placementSpec, err := PlacementSpecFromFilePath(filePath)
		if err != nil {
			return nil, err
		}
		rv[i] = placementSpec
	}
	return rv, nil
}

// PlacementSpecFromFilePath reads a placement spec from any file format viper understands.
func PlacementSpecFromFilePath(filePath string) (*PlacementSpec, error) {
	rv := &PlacementSpec{}
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(filePath)
	if err := v.ReadInConfig(); err != nil {
		err = errors.WithMessagef(err, "failed to read in PlacementSpec %s", filePath)
		return nil, errors.WithStack(err)
	}
	if err := v.Unmarshal(rv, commonconfig.CustomHooks...); err != nil {
		err = errors.WithMessagef(err, "failed to unmarshal PlacementSpec %s", filePath)
		return nil, errors.WithStack(err)
	}

	// If no name is provided, set it to be the filename.
	if rv.Name == "" {
		fileName := filepath.Base(filePath)
		fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))
		rv.Name = fileName
	}
	return rv, nil
}
