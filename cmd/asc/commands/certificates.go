package commands

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// NewCertificatesCommand creates the certificates command group.
func NewCertificatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certificate", "certs"},
		Short:   "Manage signing certificates",
		Long:    "List, create, download and revoke signing certificates",
	}

	cmd.AddCommand(newCertificatesListCommand())
	cmd.AddCommand(newCertificatesGetCommand())
	cmd.AddCommand(newCertificatesCreateCommand())
	cmd.AddCommand(newCertificatesRevokeCommand())

	return cmd
}

func newCertificatesListCommand() *cobra.Command {
	var (
		allPages        bool
		limit           int
		certificateType string
		displayName     string
		serialNumber    string
		sortBy          string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List certificates",
		Long:  "List signing certificates, optionally filtered by type, display name or serial number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSort[asc.CertificateSort](sortBy)
			if err != nil {
				return err
			}

			query := asc.NewCertificateQuery().WithLimit(pageSize(limit))

			if certificateType != "" {
				parsed, err := parseCertificateType(certificateType)
				if err != nil {
					return err
				}

				query.WithFilterCertificateType(parsed)
			}

			if displayName != "" {
				query.WithFilterDisplayName(displayName)
			}

			if serialNumber != "" {
				query.WithFilterSerialNumber(serialNumber)
			}

			if sort != nil {
				query.WithSort(*sort)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			page, err := client.Certificates().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list certificates: %w", err)
			}

			certificates, err := collectPages(ctx, client.Certificates(), page, allPages)
			if err != nil {
				return err
			}

			return writeOutput(cmd, certificates, func(writer io.Writer) error {
				if len(certificates) == 0 {
					return printEmpty(writer, "certificates")
				}

				rows := make([][]string, 0, len(certificates))
				for _, certificate := range certificates {
					rows = append(rows, []string{
						certificate.ID,
						certificate.Attributes.DisplayName,
						certificate.Attributes.CertificateType,
						certificate.Attributes.SerialNumber,
						formatTimePtr(certificate.Attributes.ExpirationDate),
					})
				}

				if err := renderTable(writer, []string{"ID", "Display Name", "Type", "Serial", "Expires"}, rows); err != nil {
					return err
				}

				if !allPages {
					printMoreHint(writer, len(certificates), page.Meta.Paging.Total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page (max 200)")
	cmd.Flags().StringVar(&certificateType, "type", "", "filter by certificate type, e.g. IOS_DISTRIBUTION")
	cmd.Flags().StringVar(&displayName, "display-name", "", "filter by display name")
	cmd.Flags().StringVar(&serialNumber, "serial", "", "filter by serial number")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order, e.g. displayName or -serialNumber")

	return cmd
}

func newCertificatesGetCommand() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "get CERTIFICATE_ID",
		Short: "Get certificate details",
		Long:  "Display a certificate, optionally saving its DER encoded content with --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			certificate, err := client.Certificates().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get certificate: %w", err)
			}

			if savePath != "" {
				return saveBase64Content(cmd, certificate.Data.Attributes.CertificateContent, savePath)
			}

			return writeOutput(cmd, certificate.Data, func(writer io.Writer) error {
				return displayCertificate(writer, &certificate.Data)
			})
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "write the certificate (.cer) to this path")

	return cmd
}

func newCertificatesCreateCommand() *cobra.Command {
	var (
		csrPath         string
		certificateType string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a certificate",
		Long:  "Create a signing certificate from a certificate signing request (CSR) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csrPath == "" {
				return ErrCSRRequired
			}

			parsed, err := parseCertificateType(certificateType)
			if err != nil {
				return err
			}

			csr, err := os.ReadFile(filepath.Clean(csrPath))
			if err != nil {
				return fmt.Errorf("failed to read CSR: %w", err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := asc.NewCertificateCreateRequest(strings.TrimSpace(string(csr)), parsed)

			certificate, err := client.Certificates().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create certificate: %w", err)
			}

			return writeOutput(cmd, certificate.Data, func(writer io.Writer) error {
				return displayCertificate(writer, &certificate.Data)
			})
		},
	}

	cmd.Flags().StringVar(&csrPath, "csr", "", "path to the certificate signing request")
	cmd.Flags().StringVar(&certificateType, "type", string(asc.CertificateTypeIOSDevelopment), "certificate type")

	return cmd
}

func newCertificatesRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke CERTIFICATE_ID",
		Short: "Revoke a certificate",
		Long:  "Revoke a signing certificate. Profiles using it become invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Certificates().Revoke(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to revoke certificate: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Revoked certificate %s\n", args[0])

			return nil
		},
	}
}

func parseCertificateType(value string) (asc.CertificateType, error) {
	certificateType, err := asc.ParseCertificateType(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidCertificateType, value)
	}

	return certificateType, nil
}

func displayCertificate(writer io.Writer, certificate *asc.Certificate) error {
	return renderProperties(writer, [][]string{
		{"ID", certificate.ID},
		{"Name", certificate.Attributes.Name},
		{"Display Name", certificate.Attributes.DisplayName},
		{"Type", certificate.Attributes.CertificateType},
		{"Platform", formatOptional(certificate.Attributes.Platform)},
		{"Serial Number", certificate.Attributes.SerialNumber},
		{"Expires", formatTimePtr(certificate.Attributes.ExpirationDate)},
	})
}

// saveBase64Content decodes content and writes it to path.
func saveBase64Content(cmd *cobra.Command, content, path string) error {
	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return fmt.Errorf("failed to decode content: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), decoded, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(decoded), path)

	return nil
}
