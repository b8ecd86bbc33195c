package restructure

const (
	legacyPostFixture = `<!DOCTYPE html>
<html lang="en">
<body>
    <div class="wrapper">
        <main class="main-content">
            <article class="post">
                <h1>Spring notes</h1>
            </article>
        </main>
        <div data-include="../partials/sidebar-post.html"></div>
    </div>
</body>
</html>
`

	legacyPostWithDuplicateArticleFixture = `<!DOCTYPE html>
<html lang="en">
<body>
    <div class="wrapper">
        <main class="main-content">
            <article class="post">
                <h1>Spring notes</h1>
            </article>
            </article>
        </main>
        <div data-include="../partials/sidebar-post.html"></div>
    </div>
</body>
</html>
`

	migratedPostFixture = `<!DOCTYPE html>
<html lang="en">
<body>
    <main class="main-content">
        <div class="wrapper">
            <article class="post">
                <h1>Spring notes</h1>
            </article>
        </div>

        <div data-include="../partials/sidebar-post.html"></div>
    </main>
</body>
</html>
`

	compactMigratedPostFixture = `<!DOCTYPE html>
<html lang="en">
<body>
<main class="main-content"><div class="wrapper">
<article class="post">
<h1>Compact</h1>
</article>
</article>
</div></main>
</body>
</html>
`

	unrelatedPostFixture = `<!DOCTYPE html>
<html lang="en">
<body>
    <section class="gallery">
        <p>No layout wrapper here.</p>
    </section>
</body>
</html>
`
)
