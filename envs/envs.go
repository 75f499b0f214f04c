package envs

import (
	"fmt"
	"os"

	"cmdlog/internal/cmdlog/types"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Envs struct {
	CommandsFile      string            `env:"CMDLOG_COMMANDS_FILE" envDefault:"commands.log"`
	CmdlogRootDirPath string            `env:"CMDLOG_ROOT_DIR_PATH" envDefault:""`
	ErrorPolicy       types.ErrorPolicy `env:"CMDLOG_ERROR_POLICY" envDefault:"halt"`
	LogLevel          string            `env:"CMDLOG_LOG_LEVEL" envDefault:"warn"`
	LogFormat         string            `env:"CMDLOG_LOG_FORMAT" envDefault:"text"`
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: .env file not found, using default values\n")
	}
}

func Parse() (Envs, error) {
	var envs Envs

	if err := env.Parse(&envs); err != nil {
		return Envs{}, err
	}

	return envs, nil
}

func Gets() Envs {
	envs, err := Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing env variables: %v\n", err)
		os.Exit(1)
	}

	return envs
}
