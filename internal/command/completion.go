package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/arnlinkgo/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for arnlink
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_arnlink()
{
    local cur prev cmd
    COMPREPLY=()
    # The -n : matters here.  ARNs are full of colons and must not be split.
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "link parse services completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    case "$cmd" in
    link)
      local opts="$common --schema --region -r --profile --quiet -q --stdin"
            ;;
        parse)
      local opts="$common --schema --region -r --profile --quiet -q --stdin --chop"
            ;;
        services)
      local opts="$common --schema"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

  # Positionals are ARNs, which we can't complete.  Only offer flags.
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  fi
  return 0
}

complete -F _arnlink arnlink
`

const zshCompletionScript = `#compdef arnlink

_arnlink() {
  local -a cmds
  cmds=(
    'link:console link for ARNs'
    'parse:parse ARNs into their parts'
    'services:supported services and resource types'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'arnlink commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    link)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '(-r --region)'{-r,--region}'[region for ARNs that omit one]:region' \
        '--profile[AWS config profile]:profile' \
        '(-q --quiet)'{-q,--quiet}'[suppress per-input errors]' \
        '--stdin[read ARNs from stdin]' \
        '*:ARN:'
      ;;
    parse)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--chop[chop the common ARN prefix]' \
        '(-r --region)'{-r,--region}'[region for ARNs that omit one]:region' \
        '--profile[AWS config profile]:profile' \
        '(-q --quiet)'{-q,--quiet}'[suppress per-input errors]' \
        '--stdin[read ARNs from stdin]' \
        '*:ARN:'
      ;;
    services)
      _arguments -C \
        $common \
        '--schema[dump schema]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:ARN:'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _arnlink arnlink arnlinkgo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: arnlink completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "arnlink completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
