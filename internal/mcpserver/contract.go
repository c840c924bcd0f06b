package mcpserver

// NamingConventions describes the filename and heading conventions that
// set_title and sync_titles maintain.
const NamingConventions = `# Entry Naming Conventions

Entries are Markdown files in a single directory. Each one is named after
its title and carries that title in its first heading.

## Filenames

` + "```" + `
<prefix>-<slug>.md
` + "```" + `

- **prefix** is optional: a number (` + "`" + `0007` + "`" + `) or a date
  (` + "`" + `2020-05-01` + "`" + ` or ` + "`" + `2020-05` + "`" + `).
- **slug** is the title lowercased, accents folded to ASCII, and every run of
  other characters replaced by a single hyphen. An empty slug becomes ` + "`" + `adr` + "`" + `.

## Headings

` + "```" + `markdown
# 0007: Use Go for services
## 7. Use Go for services
# 2020-05-01: Modern architecture
# Plain title
` + "```" + `

- The first line starting with ` + "`" + `#` + "`" + ` is the heading. Its level is kept.
- The separator after a prefix is ` + "`" + `:` + "`" + ` or ` + "`" + `.` + "`" + ` followed by whitespace.
- The filename prefix wins: syncing rewrites a heading prefix that disagrees
  with the filename. A heading prefix on an unprefixed file is left alone.

## Links

Inline links ` + "`" + `[text](0007-use-go.md#why)` + "`" + ` and reference definitions
` + "`" + `[go]: ./0007-use-go.md` + "`" + ` are rewritten on rename, in every Markdown
file under the directory. Fragments, queries, and link titles are kept.

## Tools

- ` + "`" + `set_title` + "`" + ` accepts a path, a name without ` + "`" + `.md` + "`" + `, a number
  (` + "`" + `7` + "`" + ` finds ` + "`" + `0007-*.md` + "`" + `), or a slug.
- Pass ` + "`" + `dry_run: true` + "`" + ` to preview; nothing is written.
- A rename onto an existing file fails instead of overwriting it.
`
