package session

// Commands recognized by the loop, matched against the whole input line.
const (
	CommandAdd     = "add"
	CommandRemove  = "remove"
	CommandImport  = "import"
	CommandExport  = "export"
	CommandAsk     = "ask"
	CommandExit    = "exit"
	CommandLog     = "log"
	CommandHardest = "hardest card"
	CommandReset   = "reset stats"
)

// Prompts.
const (
	promptAction     = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"
	promptTerm       = "The card:"
	promptDefinition = "The definition of the card:"
	promptRemove     = "Which card?"
	promptFileName   = "File name:"
	promptAskCount   = "How many times to ask?"
	promptAskCard    = "Print the definition of \"%s\":"
)

// Replies.
const (
	msgTermExists       = "The card \"%s\" already exists."
	msgDefinitionExists = "The definition \"%s\" already exists."
	msgCardAdded        = "The pair (\"%s\":\"%s\") has been added"
	msgCardRemoved      = "The card has been removed."
	msgCannotRemove     = "Can't remove \"%s\": there is no such card."
	msgNoCards          = "There are no cards"
	msgCorrect          = "Correct!"
	msgWrongOtherCard   = "Wrong. The right answer is \"%s\", but your definition is correct for \"%s\"."
	msgWrong            = "Wrong. The right answer is \"%s\"."
	msgCardsSaved       = "%d cards have been saved."
	msgCardsLoaded      = "%d cards have been loaded."
	msgFileNotFound     = "File not found."
	msgBye              = "Bye bye!"
	msgLogSaved         = "The log has been saved."
	msgNoHardest        = "There are no cards with errors."
	msgHardestOne       = "The hardest card is \"%s\". You have %d errors answering it"
	msgHardestMany      = "The hardest cards are %s. You have %d errors answering them."
	msgStatsReset       = "Card statistics have been reset."
)
