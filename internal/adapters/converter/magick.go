package converter

import (
	"context"
	"convbot/internal/adapters/file"
	"convbot/internal/core/domain"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// MagickConverter converts through the ImageMagick CLI, staging input and
// output in temp files.
type MagickConverter struct {
	magickBinary []string
}

func NewMagickConverter() (*MagickConverter, error) {
	eh := &MagickConverter{}
	commands := [][]string{{"magick", "-version"}, {"convert", "-version"}}

	for _, command := range commands {
		_, err := exec.Command(command[0], command[1:]...).Output()
		if err != nil {
			log.Debug().Strs("commands", command).Msg("binary not found")
			continue
		}

		log.Debug().Strs("commands", command).Msg("binary found")
		eh.magickBinary = command[:len(command)-1]
		break
	}

	if len(eh.magickBinary) == 0 {
		return nil, errors.New("magick binary not available")
	}

	return eh, nil
}

func (m *MagickConverter) Convert(ctx context.Context, data []byte, format domain.Format) (*domain.ConvertedImage, error) {
	source, err := sniff(data)
	if err != nil {
		return nil, err
	}

	if _, err := domain.ParseFormat(string(format)); err != nil {
		return nil, err
	}

	in, err := file.SaveTempFile(data, source)
	if err != nil {
		return nil, fmt.Errorf("%w: staging input: %w", domain.ErrEncode, err)
	}
	defer file.RemoveTempFile(in)

	out, err := file.TempPath(format.Extension())
	if err != nil {
		return nil, fmt.Errorf("%w: staging output: %w", domain.ErrEncode, err)
	}
	defer file.RemoveTempFile(out)

	// the first frame only, so animated sources yield a single image
	args := append([]string{}, m.magickBinary...)
	args = append(args, in+"[0]")
	if format == domain.FormatJPEG {
		args = append(args, "-background", "white", "-alpha", "remove", "-alpha", "off")
	}
	args = append(args, string(format)+":"+out)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	stderr, err := cmd.CombinedOutput()
	if err != nil {
		log.Error().Bytes("magickStderr", stderr).Strs("args", args).Msg("magick command failed")
		return nil, fmt.Errorf("%w: magick: %w", domain.ErrEncode, err)
	}

	log.Debug().Msg("magick command finished")

	converted, err := file.GetTempFile(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}

	return &domain.ConvertedImage{
		Format:   format,
		FileName: format.FileName(),
		Data:     converted,
	}, nil
}
