package main

import (
	"io"

	"github.com/npillmayer/loaderutil"
	"github.com/npillmayer/loaderutil/assetfile"
	"github.com/npillmayer/loaderutil/hashing"
	"github.com/spf13/cobra"
)

// digestFlags override the [digest] section of the config.
type digestFlags struct {
	algorithm string
	encoding  string
	length    int
	salt      string
}

func (f *digestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algo", "a", "", "hash algorithm")
	cmd.Flags().StringVarP(&f.encoding, "encoding", "e", "", "digest encoding")
	cmd.Flags().IntVarP(&f.length, "length", "l", 0, "maximum digest length")
	cmd.Flags().StringVar(&f.salt, "salt", "", "salt appended to the content")
}

// spec merges flags which have been set over the config defaults.
func (f *digestFlags) spec(cmd *cobra.Command, cfg DigestConfig) loaderutil.DigestSpec {
	spec := loaderutil.DigestSpec{
		Algorithm: cfg.Algorithm,
		Encoding:  cfg.Encoding,
		MaxLength: cfg.Length,
	}
	salt := cfg.Salt
	if cmd.Flags().Changed("algo") {
		spec.Algorithm = f.algorithm
	}
	if cmd.Flags().Changed("encoding") {
		spec.Encoding = f.encoding
	}
	if cmd.Flags().Changed("length") {
		spec.MaxLength = f.length
	}
	if cmd.Flags().Changed("salt") {
		salt = f.salt
	}
	if salt != "" {
		spec.Salt = []byte(salt)
	}
	return spec
}

func newDigestCmd(a *app) *cobra.Command {
	var flags digestFlags
	var list bool
	cmd := &cobra.Command{
		Use:   "digest [FILE...]",
		Short: "Hash files and print the encoded digests",
		Long: `digest hashes every FILE, or stdin if no FILE is given, and prints
the encoded digest.

Encodings: hex, base26, base32, base36, base49, base52, base58, base62,
base64, base64url, z85, latin1 and emoji.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range hashing.DefaultRegistry.Names() {
					a.out.line(roleKey, name)
				}
				return nil
			}
			spec := flags.spec(cmd, a.config.Digest)
			if len(args) == 0 {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				token, err := spec.Digest(content)
				if err != nil {
					a.printError(cmd, "stdin", err)
					return failed([]error{err})
				}
				a.out.line(roleToken, token)
				return nil
			}
			return a.digestFiles(cmd, spec, args)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&list, "list", false, "list the supported algorithms")
	return cmd
}

func (a *app) digestFiles(cmd *cobra.Command, spec loaderutil.DigestSpec, paths []string) error {
	var errs []error
	col := a.out.column(paths)
	for _, p := range paths {
		f, err := assetfile.Load(p)
		if err != nil {
			a.printError(cmd, p, err)
			errs = append(errs, err)
			continue
		}
		token, err := spec.Digest(f.Content)
		if err != nil {
			a.printError(cmd, p, err)
			errs = append(errs, err)
			continue
		}
		a.out.pair(col, p, roleSource, token, roleToken)
	}
	return failed(errs)
}
