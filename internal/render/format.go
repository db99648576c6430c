package render

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTable        = errors.New("tabela sem linhas para desenhar")
	ErrUnsupportedFormat = errors.New("formato de imagem não suportado")
	ErrUnsupportedChart  = errors.New("tipo de gráfico não suportado")
)

// Format é o formato da imagem gerada
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat aceita png ou svg. Vazio resulta em png.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", raw)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}
