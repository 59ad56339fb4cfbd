/*
Package prompt obtains typed, validated values from an operator over a text
stream.

A Prompter writes a query, reads one line and either returns a value or prints
the rejection reason and asks again. Only a closed input stream or a cancelled
context ends the loop without a value.

	p := prompt.New(os.Stdin, os.Stdout, prompt.WithStyler(style.Detect()))
	size, err := p.Integer(ctx, "Input size", prompt.Range(3, 24))
*/
package prompt
