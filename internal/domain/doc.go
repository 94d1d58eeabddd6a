// Package domain holds the bot's core types and pure logic: the configured
// location list, weather and forecast readings, and EUR/UAH conversion math.
//
// # Locations
//
// The bot serves a fixed set of towns in the Cologne / Oberbergischer Kreis
// area. The list is immutable after startup; each entry carries a display
// name (used as the lookup key and in button payloads) and WGS-84
// coordinates for the weather API.
//
// # Currency
//
// All conversion goes through a single scalar: how many UAH one EUR buys.
// The UAH→EUR direction is derived arithmetically (1/rate), never fetched
// separately. When the rate provider is unreachable a hardcoded fallback of
// 44.5 is substituted so the converter always produces a number; Rate.Fallback
// marks such substitutions for logging and metrics.
package domain
