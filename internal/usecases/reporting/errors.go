package reporting

import "errors"

var ErrDatasetNotLoaded = errors.New("dataset não carregado")
