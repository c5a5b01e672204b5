package constants

// FuncLeafNotice is printed under trees that still hold callable leaves
const FuncLeafNotice = `Some leaves are callable; run "dirload resolve" to invoke them`
