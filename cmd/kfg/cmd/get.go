package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	fconfig "github.com/felpofo/kfg/foundation/core/config"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
)

var getEnvPrefix string

var getCmd = &cobra.Command{
	Use:   "get FILE KEY",
	Short: "Look up a dotted key",
	Long: `Loads a kfg, TOML or YAML file and prints the value at a dotted key.

Scalars are printed as is, arrays and dicts as JSON. With --env-prefix
an environment variable PREFIX_A_B overrides the key a.b.

Examples:
  kfg get app.kfg server.port
  KFG_APP_SERVER_PORT=9000 kfg get --env-prefix KFG_APP app.kfg server.port`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&getEnvPrefix, "env-prefix", "", "environment override prefix")
}

func runGet(cmd *cobra.Command, args []string) error {
	path, key := args[0], args[1]

	app.logger.Info("Reading", mdwlog.String("path", path))
	cfg, err := fconfig.LoadWithOptions(path, fconfig.LoadOptions{
		Format:    fconfig.FormatAuto,
		EnvPrefix: getEnvPrefix,
	})
	if err != nil {
		return err
	}

	var (
		value interface{}
		ok    bool
	)
	if getEnvPrefix != "" {
		value, ok = cfg.Resolve(key)
	} else {
		value, ok = cfg.Get(key)
	}
	if !ok {
		return mdwerror.New("key not found: "+key).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("kfg.get").
			WithDetail("path", path).
			WithDetail("key", key)
	}

	text, err := formatValue(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func formatValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to encode value").
				WithCode(mdwerror.CodeKFGExport).
				WithOperation("kfg.get")
		}
		return string(data), nil
	default:
		return fmt.Sprint(v), nil
	}
}
