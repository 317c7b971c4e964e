package app

// MaxPlayers caps distinct players per game. Ten hands of ten cards
// plus four seeded stacks exactly fits the 104-card universe.
const MaxPlayers = 10

// MinPlayersToStartGame is the minimum lobby size required to start.
const MinPlayersToStartGame = 1
