package mcpserver

// ResourceFormatURI is the MCP resource serving ResourceFormatContract.
const ResourceFormatURI = "mokares://resource-format"

// ResourceFormatContract describes the markdown format of articles and
// cheatsheets for LLM consumers creating or editing resources.
const ResourceFormatContract = `# mokares Resource Format

Articles and cheatsheets are markdown files that start with a YAML metadata
header between two ` + "`---`" + ` lines, followed by one blank line and the body.

## Article

` + "```" + `markdown
---
title: Intro to ownership       # REQUIRED, shown in the README index
description: Borrowing basics
author: Jane Doe
tags:                            # OPTIONAL, YAML list
  - rust
  - memory
icon: fa-solid fa-book
---

## Intro to ownership
` + "```" + `

## Cheatsheet

` + "```" + `markdown
---
title: iterators                 # REQUIRED, first letter is capitalised in the index
author: Jane Doe
level: 2                         # difficulty tier, 0 to 255
language: rust                   # language tag, unknown tags become "other"
icon: devicon-rust-original      # REQUIRED
---

## iterators
` + "```" + `

## Rules

1. The header must be the first thing in the file.
2. Missing or malformed fields are read as empty values, never as errors.
3. File names are the slug of the title plus ` + "`.md`" + ` (e.g. ` + "`intro-to-ownership.md`" + `).
   Creating a resource never replaces an existing file.
4. Articles live under the configured article directory, cheatsheets under the
   cheatsheet directory. Sub-directories are indexed too.
5. Guides are directories under the guide directory; the index links each one to
   its repository by directory name.
6. Encoding is UTF-8.
`
