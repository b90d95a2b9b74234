package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Create a project and run its commands",
		Content: topicQuickstart,
	},
	{
		Name:    "templates",
		Title:   "Templates",
		Summary: "Where templates live and how to add your own",
		Content: topicTemplates,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "config.yaml schema, commands.toml and TAU_ settings",
		Content: topicConfig,
	},
	{
		Name:    "commands",
		Title:   "Running Commands",
		Summary: "Tasks, output modes, arguments and failures",
		Content: topicCommands,
	},
	{
		Name:    "placeholders",
		Title:   "Placeholders and Environment",
		Summary: "{{workspace}}, {{src}}, {{name}}, .env and TAU_ variables",
		Content: topicPlaceholders,
	},
	{
		Name:    "matching",
		Title:   "Project Matching",
		Summary: "How tau decides which template a directory belongs to",
		Content: topicMatching,
	},
}

const topicQuickstart = "# Quick Start\n\n" +
	"1. See which templates are installed:\n\n" +
	"        tau list\n\n" +
	"2. Create a project from one of them:\n\n" +
	"        tau new api golang\n\n" +
	"   Leave out the template name to pick one interactively. Use `.` as the\n" +
	"   project name to build the project in the current, empty, directory.\n\n" +
	"3. From anywhere inside the project, run one of the template's commands:\n\n" +
	"        cd api/src\n" +
	"        tau build --name app\n" +
	"        tau test --output\n\n" +
	"   `tau build` is shorthand for `tau run build`.\n\n" +
	"4. Check why a directory is not recognised:\n\n" +
	"        tau doctor golang\n"

const topicTemplates = "# Templates\n\n" +
	"A template is a directory under `templates/` in the tau config directory\n" +
	"(see `tau path`) plus an entry of the same name in `config.yaml`. The\n" +
	"directory is copied verbatim into every new project; its shape is also\n" +
	"what tau compares against when it looks for the enclosing project.\n\n" +
	"## Adding a template\n\n" +
	"    tau template add rust --from ~/skeletons/rust --description \"Cargo crate\"\n\n" +
	"Without `--from`, a starter skeleton with `src/` and a README is written.\n" +
	"Template and command names must be lowercase letters, digits, dashes and\n" +
	"underscores, and may not start or end with a dash or underscore.\n\n" +
	"## Defaults\n\n" +
	"`golang` and `typescript` templates are installed on first run. tau never\n" +
	"overwrites files that already exist in the config directory, so edits to\n" +
	"the bundled templates are kept.\n"

const topicConfig = "# Configuration Reference\n\n" +
	"## config.yaml\n\n" +
	"One entry per template:\n\n" +
	"```yaml\n" +
	"golang:\n" +
	"  description: Go module\n" +
	"  optional-files:        # relative to the template root\n" +
	"    - README.md\n" +
	"    - \"docs/**\"          # glob patterns are allowed\n" +
	"  commands:\n" +
	"    build:\n" +
	"      description: Compile the binary\n" +
	"      args:\n" +
	"        - name: name\n" +
	"          description: Output binary name\n" +
	"      tasks:\n" +
	"        - name: Compile\n" +
	"          command: go build -o {{workspace}}/bin/{{name}} {{src}}\n" +
	"          output: optional   # none | optional | required\n" +
	"  routes: []             # maintained by tau\n" +
	"```\n\n" +
	"Every command needs at least one task, every task a `name` and a\n" +
	"`command`. `output` defaults to `none`. Argument names may not be\n" +
	"`output`, `fail-fast`, `help`, `workspace` or `src`.\n\n" +
	"## commands.toml\n\n" +
	"A catalog of reference commands shown by `tau exec`:\n\n" +
	"```toml\n" +
	"[[git]]\n" +
	"name = \"Branches\"\n" +
	"description = \"Create and delete branches\"\n" +
	"commands = [\"git switch -c <branch>\"]\n" +
	"```\n\n" +
	"## Settings\n\n" +
	"| Variable | Default | Meaning |\n" +
	"|---|---|---|\n" +
	"| `TAU_CONFIG_DIR` | `<user config dir>/tau` | where config, catalog and templates live |\n" +
	"| `TAU_HOME` | your home directory | upper bound of the project search |\n" +
	"| `TAU_LOG_LEVEL` | `warn` | `debug`, `info`, `warn` or `error` |\n" +
	"| `TAU_NO_COLOR` | `false` | disable colored output |\n"

const topicCommands = "# Running Commands\n\n" +
	"    tau run [command] [--<arg> value ...] [--output] [--fail-fast]\n" +
	"    tau <command> ...\n\n" +
	"Tasks run one after another in the project root. Each prints its name and\n" +
	"wall time in milliseconds.\n\n" +
	"## Output modes\n\n" +
	"- `none`: stdout is discarded.\n" +
	"- `optional`: stdout is shown when `--output` (`-o`) is given.\n" +
	"- `required`: stdout is always shown.\n\n" +
	"## Failures\n\n" +
	"A task that exits non-zero has its stderr printed and the next task still\n" +
	"runs. Pass `--fail-fast` to stop at the first failure instead.\n\n" +
	"Before anything runs, every command line is expanded and every program\n" +
	"named without a path is looked up on PATH, so a missing argument or tool\n" +
	"aborts the run before the first task starts. Programs given as a path,\n" +
	"such as `./bin/app`, may be built by an earlier task and are not checked.\n\n" +
	"## Reserved names\n\n" +
	"`tau run` with no command name runs the template's own `run` command.\n" +
	"Templates cannot define commands named `new`, `path`, `list`, `exec`,\n" +
	"`doctor`, `template`, `docs` or `help`; those are tau's own.\n"

const topicPlaceholders = "# Placeholders and Environment\n\n" +
	"| Placeholder | Value |\n" +
	"|---|---|\n" +
	"| `{{workspace}}` | the project root |\n" +
	"| `{{src}}` | `<project root>/src` |\n" +
	"| `{{name}}` | the value of `--name` |\n\n" +
	"Substitution is plain text: values are not quoted. After substitution the\n" +
	"line is split into words with shell quoting rules, and `$VAR` references\n" +
	"are expanded. Pipes, redirections and `$(...)` are not interpreted; wrap\n" +
	"the line in `sh -c '...'` when you need them.\n\n" +
	"## Environment\n\n" +
	"Every task inherits tau's environment plus:\n\n" +
	"- the variables in `<project root>/.env`, if that file exists;\n" +
	"- `TAU_WORKSPACE`, `TAU_SRC` and `TAU_TEMPLATE`.\n"

const topicMatching = "# Project Matching\n\n" +
	"tau walks from the current directory up to, but not including, your home\n" +
	"directory.\n\n" +
	"1. At each level it first checks the routes recorded in `config.yaml`.\n" +
	"   A recorded directory is re-checked against its template; if it no\n" +
	"   longer matches, the route is dropped.\n" +
	"2. If no route is confirmed, it walks up again and compares every\n" +
	"   template. The first level where any template matches wins. When more\n" +
	"   than one template matches there, you are asked to choose, and the\n" +
	"   choice is recorded.\n\n" +
	"A directory matches a template when every entry of the template exists\n" +
	"in it with the same kind (file or directory), at every level. Extra files\n" +
	"are fine, file contents are never compared, and entries listed in\n" +
	"`optional-files` may be absent. OS clutter such as `.DS_Store` or\n" +
	"`Thumbs.db` inside a template is ignored.\n\n" +
	"`tau doctor [template]` lists what the nearest candidate is missing.\n"
