package pgstore

// One table per entity kind, mirroring the memstore field sets. Applied with
// CREATE TABLE IF NOT EXISTS so startup is idempotent against an existing
// database.
const schema = `
CREATE TABLE IF NOT EXISTS programs (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	image_url TEXT NOT NULL,
	target_number INTEGER NOT NULL DEFAULT 0,
	current_number INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS donations (
	id SERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	amount NUMERIC(10,2) NOT NULL,
	donation_type TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	program_id INTEGER,
	status TEXT NOT NULL DEFAULT 'pending',
	pan_number TEXT,
	message TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS volunteers (
	id SERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	interest_area TEXT NOT NULL,
	availability TEXT NOT NULL,
	skills TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS internships (
	id SERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	university TEXT NOT NULL,
	internship_type TEXT NOT NULL,
	resume_url TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS partnerships (
	id SERIAL PRIMARY KEY,
	company_name TEXT NOT NULL,
	contact_person TEXT NOT NULL,
	email TEXT NOT NULL,
	partnership_type TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contacts (
	id SERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	inquiry_type TEXT NOT NULL,
	message TEXT NOT NULL,
	subscribe_newsletter BOOLEAN NOT NULL DEFAULT FALSE,
	status TEXT NOT NULL DEFAULT 'new',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	event_date TIMESTAMPTZ NOT NULL,
	location TEXT NOT NULL,
	image_url TEXT NOT NULL,
	event_type TEXT NOT NULL,
	registration_required BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS newsletter (
	id SERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	status TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
