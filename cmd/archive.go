package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newZipCmd() *cobra.Command {
	return newArchiveCmd("zip", m.FormatZip, "Archive a directory as zip")
}

func newTarCmd() *cobra.Command {
	return newArchiveCmd("tar", m.FormatTarGz, "Archive a directory as gzip-compressed tar")
}

func newUnzipCmd() *cobra.Command {
	return newExtractCmd("unzip", m.FormatZip, "Extract a zip archive into the working directory")
}

func newUntarCmd() *cobra.Command {
	return newExtractCmd("untar", m.FormatTarGz, "Extract a gzip-compressed tar archive into the working directory")
}

func newArchiveCmd(name string, format m.ArchiveFormat, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SOURCE DESTINATION",
		Short: short,
		Long: short + `. The contents of SOURCE are stored at the top of the archive,
which is written to DESTINATION with its extension replaced by ` + format.Extension() + `.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Archive(cmd.Context(), domain.ArchiveArgs{
				Format:      format,
				Source:      m.Path(args[0]),
				Destination: m.Path(args[1]),
			})
		},
	}
}

func newExtractCmd(name string, format m.ArchiveFormat, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " ARCHIVE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Extract(cmd.Context(), domain.ExtractArgs{
				Format:  format,
				Archive: m.Path(args[0]),
			})
		},
	}
}

func init() {
	registerCommand(newZipCmd)
	registerCommand(newTarCmd)
	registerCommand(newUnzipCmd)
	registerCommand(newUntarCmd)
}
