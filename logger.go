package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func SetupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

type ConnLogger struct {
	zerolog zerolog.Logger
}

func GetConnLogger(ip string, handle string) ConnLogger {
	return ConnLogger{log.With().Str("ip", ip).Str("handle", handle).Logger()}
}

func (l ConnLogger) Connected() {
	l.zerolog.Info().Msg("User connected")
}

func (l ConnLogger) Disconnected() {
	l.zerolog.Info().Msg("User disconnected")
}

func (l ConnLogger) DroppedEvent(err error) {
	l.zerolog.Warn().Err(err).Msg("Dropped inbound event")
}

func LogJoinedChat(handle string, roomType string, preference string) {
	log.Info().Str("handle", handle).Str("room-type", roomType).Str("preference", preference).Msg("Joining chat")
}

func LogWaitingForMatch(handle string, pool string) {
	log.Info().Str("handle", handle).Str("pool", pool).Msg("No match found, waiting")
}

func LogMatched(handle string, partner string) {
	log.Info().Str("handle", handle).Str("partner", partner).Msg("Matched")
}

func LogUnservablePreference(handle string, preference string) {
	log.Warn().Str("handle", handle).Str("preference", preference).Msg("Preference cannot be served by couple pairing")
}

func LogCreatedGroup(code string, handle string) {
	log.Info().Str("group-code", code).Str("handle", handle).Msg("Created group")
}

func LogJoinedGroup(code string, handle string) {
	log.Info().Str("group-code", code).Str("handle", handle).Msg("Joined group")
}

func LogLeftGroup(code string, handle string) {
	log.Info().Str("group-code", code).Str("handle", handle).Msg("Left group")
}

func LogEmptyGroupRemoved(code string) {
	log.Info().Str("group-code", code).Msg("Removing empty group")
}

func LogGroupNotFound(code string, handle string) {
	log.Warn().Str("group-code", code).Str("handle", handle).Msg("Group not found")
}

func LogInvalidJoinMethod(handle string, method string) {
	log.Warn().Str("handle", handle).Str("method", method).Msg("Invalid group join method")
}

func LogUserNotFound(component string, handle string) {
	log.Warn().Str("component", component).Str("handle", handle).Msg("User not found")
}

func LogPartnerMissing(handle string) {
	log.Warn().Str("handle", handle).Msg("No partner to deliver to")
}

func LogSessionClosed(handle string, partner string) {
	log.Info().Str("handle", handle).Str("partner", partner).Msg("Couple session closed")
}

func LogRecipientUnreachable(handle string, err error) {
	log.Warn().Str("handle", handle).Err(err).Msg("Recipient unreachable, event dropped")
}

func LogGroupCensus(count int) {
	log.Debug().Int("active-groups", count).Msg("Group census")
}

func LogGroupCensusEntry(code string, members []string) {
	log.Debug().Str("group-code", code).Strs("members", members).Msg("Group")
}

func LogStartedServer(addr string) {
	log.Info().Msgf("Starting server on %v", addr)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}

func LogServerStopped(err error) {
	log.Error().Err(err).Msg("Server stopped")
}
