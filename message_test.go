package irc

import "testing"

func TestMessageArg(t *testing.T) {
	m, err := Parse("MODE #c +o bob")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := m.Arg(1); got != "#c" {
		t.Errorf("Arg(1) = %q, want %q", got, "#c")
	}
	if got := m.Arg(2); got != "+o" {
		t.Errorf("Arg(2) = %q, want %q", got, "+o")
	}
	if got := m.Arg(0); got != "" {
		t.Errorf("Arg(0) = %q, want empty", got)
	}
	if got := m.Arg(99); got != "" {
		t.Errorf("Arg(99) = %q, want empty", got)
	}
}

func TestMessageTextAndTarget(t *testing.T) {
	m, err := Parse(":bob!bob@bob.com PRIVMSG #c :hello there")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	target, err := m.Target()
	if err != nil {
		t.Fatalf("Target returned error: %v", err)
	}
	if target != "#c" {
		t.Errorf("Target() = %q, want %q", target, "#c")
	}
	text, err := m.Text()
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if text != "hello there" {
		t.Errorf("Text() = %q, want %q", text, "hello there")
	}
}

func TestMessageTextUnsupportedCode(t *testing.T) {
	m, err := Parse("005 nick CHANTYPES=# :are supported by this server")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if _, err := m.Text(); err == nil {
		t.Errorf("Text() on 005 should return an error")
	}
	if _, err := m.Target(); err == nil {
		t.Errorf("Target() on 005 should return an error")
	}
}

func TestPrefixString(t *testing.T) {
	p := UserPrefix("bob", "bob", "bob.com")
	if got := p.String(); got != "bob!bob@bob.com" {
		t.Errorf("String() = %q, want %q", got, "bob!bob@bob.com")
	}
	if p.IsServer() {
		t.Errorf("IsServer() = true for a user prefix")
	}

	s := ServerPrefix("irc.example.org")
	if got := s.String(); got != "irc.example.org" {
		t.Errorf("String() = %q, want %q", got, "irc.example.org")
	}
	if !s.IsServer() {
		t.Errorf("IsServer() = false for a server prefix")
	}

	var zero Prefix
	if !zero.IsZero() {
		t.Errorf("zero value Prefix should report IsZero() == true")
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, perr := Parse(":org.prefix.cool")
	if perr == nil {
		t.Fatal("expected a ParseError")
	}
	if perr.Error() == "" {
		t.Errorf("ParseError.Error() returned empty string")
	}
}
