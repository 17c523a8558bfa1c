// Package mdblocks renders Markdown documents that contain cards and
// projects blocks to HTML, and optionally to PDF using headless Chrome.
//
// # Blocks
//
// Two fenced code block languages are recognized. A cards block holds a
// YAML list of items laid out as a grid:
//
//	```cards cols=2 image-bg
//	- title: Docs
//	  content: Read the manual
//	  url: https://example.com/docs
//	  image: img/docs.png
//	```
//
// A projects block (alias gantt) holds a YAML list of activities rendered
// as a timeline. An activity has a start, and either an explicit end or a
// duration given with lasts ("3 days", "2 weeks", "1 month"). Activities
// with nested activities are phases:
//
//	```projects period-format="MMM YYYY"
//	- title: Research
//	  activities:
//	    - title: Interviews
//	      start: 2024-03-01
//	      lasts: 2 weeks
//	```
//
// A block that fails to decode makes the whole conversion fail; errors
// carry the block language and line.
//
// # Quick Start
//
//	conv, err := mdblocks.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdblocks.Input{
//	    Markdown: content,
//	    HTMLOnly: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0o644)
//
// Leave HTMLOnly unset to also get result.PDF.
//
// # Using the extension directly
//
// Hosts that run their own goldmark pipeline register the extension:
//
//	md := goldmark.New(goldmark.WithExtensions(
//	    mdblocks.NewExtension(mdblocks.CardsDefaults{Columns: 4}, mdblocks.PlanDefaults{}),
//	))
//
// # Parallel Processing
//
// For batch conversion, ConverterPool hands out converters, each with its
// own lazily started browser:
//
//	pool := mdblocks.NewConverterPool(mdblocks.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
package mdblocks
