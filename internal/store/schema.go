package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS metrics (
    metric        TEXT NOT NULL,
    year          INTEGER NOT NULL,
    value         REAL NOT NULL,
    PRIMARY KEY (metric, year)
);

CREATE TABLE IF NOT EXISTS trends (
    metric        TEXT PRIMARY KEY,
    first_year    INTEGER NOT NULL,
    last_year     INTEGER NOT NULL,
    slope         REAL NOT NULL,
    intercept     REAL NOT NULL,
    r2            REAL NOT NULL,
    cagr          REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS forecasts (
    metric        TEXT NOT NULL,
    year          INTEGER NOT NULL,
    estimate      REAL NOT NULL,
    lower         REAL,
    upper         REAL,
    confidence    REAL NOT NULL,
    degenerate    INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (metric, year)
);

CREATE TABLE IF NOT EXISTS segments (
    segment       TEXT PRIMARY KEY,
    revenue       REAL NOT NULL,
    expenses      REAL NOT NULL,
    net           REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_metrics_year ON metrics(year);
`
