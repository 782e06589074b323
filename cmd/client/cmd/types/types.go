package types

type contextKey string

// ClientAppKey - ключ, под которым root кладет *client.App в контекст команды
const ClientAppKey contextKey = "client_app"
