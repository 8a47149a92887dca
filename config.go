package irc

import "github.com/spf13/viper"

// LoadReconnectionSettings decodes a ReconnectionSettings out of v,
// following nabbar-golib/config's pattern of keeping component settings
// in the host's shared viper instance rather than a bespoke format.
// Recognized keys, all under the "reconnect" namespace:
//
//	reconnect.enabled                  bool   (default true)
//	reconnect.max_attempts              int    (default 10)
//	reconnect.delay_between_attempts    duration (default 5s)
//	reconnect.delay_after_disconnect    duration (default 60s)
//
// A key absent from v falls back to the matching default from
// DefaultReconnectionSettings.
func LoadReconnectionSettings(v *viper.Viper) ReconnectionSettings {
	s := DefaultReconnectionSettings()
	if v == nil {
		return s
	}
	if v.IsSet("reconnect.enabled") {
		s.Reconnect = v.GetBool("reconnect.enabled")
	}
	if v.IsSet("reconnect.max_attempts") {
		s.MaxAttempts = v.GetInt("reconnect.max_attempts")
	}
	if d := v.GetDuration("reconnect.delay_between_attempts"); d > 0 {
		s.DelayBetweenAttempts = d
	}
	if d := v.GetDuration("reconnect.delay_after_disconnect"); d > 0 {
		s.DelayAfterDisconnect = d
	}
	return s
}

// LoadMonitorSettings decodes a MonitorSettings out of v. Recognized
// keys, under the "monitor" namespace:
//
//	monitor.activity_timeout  duration (default 60s)
//	monitor.ping_timeout      duration (default 15s)
func LoadMonitorSettings(v *viper.Viper) MonitorSettings {
	s := DefaultMonitorSettings()
	if v == nil {
		return s
	}
	if d := v.GetDuration("monitor.activity_timeout"); d > 0 {
		s.ActivityTimeout = d
	}
	if d := v.GetDuration("monitor.ping_timeout"); d > 0 {
		s.PingTimeout = d
	}
	return s
}

// RegisterSettingsDefaults registers every package default on v via
// viper.SetDefault, so that v.AllSettings()/config dumps reflect them
// even before a config file is read, matching nabbar-golib/config's
// SetDefault usage. Hosts that want LoadReconnectionSettings and
// LoadMonitorSettings to participate in viper's own precedence rules
// (flags > env > file > defaults) should call this once at startup,
// before binding flags or reading a config file.
func RegisterSettingsDefaults(v *viper.Viper) {
	d := DefaultReconnectionSettings()
	v.SetDefault("reconnect.enabled", d.Reconnect)
	v.SetDefault("reconnect.max_attempts", d.MaxAttempts)
	v.SetDefault("reconnect.delay_between_attempts", d.DelayBetweenAttempts)
	v.SetDefault("reconnect.delay_after_disconnect", d.DelayAfterDisconnect)

	m := DefaultMonitorSettings()
	v.SetDefault("monitor.activity_timeout", m.ActivityTimeout)
	v.SetDefault("monitor.ping_timeout", m.PingTimeout)
}
