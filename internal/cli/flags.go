package cli

func (c *RootCommand) initFlags() {
	c.PersistentFlags().StringVarP(
		&c.Options.ConfigPath,
		"config",
		"c",
		"",
		"optional .env file with HASHTABLE_* settings (default ./.env when present)",
	)
}
