package irc

import "fmt"

// Text returns the free-form text portion of a message, for the
// commands where that concept makes sense: PRIVMSG, NOTICE, and the
// commands whose last parameter is a human-readable reason (PART,
// KICK, QUIT, ERROR, TOPIC, MODE). An error is returned for any other
// Code; it is safe to discard when the caller already knows m.Code is
// one of the supported ones (e.g. inside an OnText handler).
func (m *Message) Text() (string, error) {
	switch m.Code {
	case CmdQuit, CmdError:
		return m.Trailing, nil
	case CmdPrivmsg, CmdNotice, CmdTopic, CmdKick, CmdPart, CmdMode:
		if m.HasTrailing {
			return m.Trailing, nil
		}
		return m.Arg(2), nil
	default:
		return "", fmt.Errorf("irc: Text: code %s is not supported", m.Code)
	}
}

// Target returns the intended recipient of a message: the channel or
// nickname a PRIVMSG/NOTICE was sent to, or the subject of a
// TOPIC/KICK/MODE/INVITE. An error is returned for any other Code.
func (m *Message) Target() (string, error) {
	switch m.Code {
	case CmdPrivmsg, CmdNotice, CmdInvite, CmdTopic, CmdKick, CmdPart, CmdMode:
		return m.Arg(1), nil
	default:
		return "", fmt.Errorf("irc: Target: code %s is not supported", m.Code)
	}
}
