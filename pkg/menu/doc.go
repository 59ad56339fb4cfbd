/*
Package menu implements a numbered action menu on top of package prompt.

Actions are declared explicitly with a Builder, in the order they should be
shown. Each action has a name and an optional description; without one the
label is derived from the name.

	m, err := menu.NewBuilder().
		Add("air_nuke", c.AirNuke).
		Add("exit_program", c.Exit, menu.WithDescription("Exit"), menu.AsTerminal()).
		Build(p)
	if err != nil {
		return err
	}
	return m.Run(ctx)
*/
package menu
