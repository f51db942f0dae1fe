package cmd

import "github.com/google/subcommands"

// Commands is the full set of subcommands. A main package registers them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&updateAccountCmd{},
	&deleteAccountCmd{},
	&accountsCmd{},
	&addCategoryCmd{},
	&updateCategoryCmd{},
	&deleteCategoryCmd{},
	&categoriesCmd{},
	&addTypeCmd{},
	&deleteTypeCmd{},
	&typesCmd{},
	&addTxCmd{},
	&editTxCmd{},
	&deleteTxCmd{},
	&txCmd{},
	&dashboardCmd{},
	&reportCmd{},
	&trendCmd{},
	&importCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}
